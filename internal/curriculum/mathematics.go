package curriculum

// mathematicsStandards returns the Mathematics Curriculum Framework
// dataset (2017), hand-authored per course. Keep entries sorted the way
// the framework lists them; the catalog preserves this order.
func mathematicsStandards() []CourseStandards {
	return []CourseStandards{
		{
			Course: "Algebra I",
			Domains: []DomainGroup{
				{
					Domain: "Number and Quantity",
					Standards: []Standard{
						{
							ID:            "N-RN.1",
							Domain:        "Number and Quantity",
							Cluster:       "Extend the properties of exponents to rational exponents",
							Description:   "Explain how the definition of the meaning of rational exponents follows from extending the properties of integer exponents.",
							KeyVocabulary: []string{"rational exponent", "radical", "nth root", "base", "power"},
							KeyFormulas:   []string{`$a^{1/n} = \sqrt[n]{a}$`, `$a^{m/n} = (\sqrt[n]{a})^m$`},
						},
						{
							ID:            "N-RN.3",
							Domain:        "Number and Quantity",
							Cluster:       "Use properties of rational and irrational numbers",
							Description:   "Explain why the sum or product of two rational numbers is rational; that the sum of a rational and irrational number is irrational; and that the product of a nonzero rational and irrational number is irrational.",
							KeyVocabulary: []string{"rational number", "irrational number", "closure"},
						},
						{
							ID:            "N-Q.1",
							Domain:        "Number and Quantity",
							Cluster:       "Reason quantitatively and use units to solve problems",
							Description:   "Use units as a way to understand problems and to guide the solution of multi-step problems; choose and interpret units consistently in formulas.",
							KeyVocabulary: []string{"unit", "dimensional analysis", "rate", "conversion factor"},
						},
					},
				},
				{
					Domain: "Algebra",
					Standards: []Standard{
						{
							ID:            "A-SSE.1",
							Domain:        "Algebra",
							Cluster:       "Interpret the structure of expressions",
							Description:   "Interpret expressions that represent a quantity in terms of its context. Interpret parts of an expression such as terms, factors, and coefficients.",
							KeyVocabulary: []string{"expression", "term", "factor", "coefficient", "constant"},
						},
						{
							ID:            "A-SSE.2",
							Domain:        "Algebra",
							Cluster:       "Interpret the structure of expressions",
							Description:   "Use the structure of an expression to identify ways to rewrite it. For example, see $x^4 - y^4$ as $(x^2)^2 - (y^2)^2$.",
							KeyVocabulary: []string{"factoring", "difference of squares", "common factor", "grouping"},
							KeyFormulas:   []string{`$a^2 - b^2 = (a+b)(a-b)$`, `$a^2 + 2ab + b^2 = (a+b)^2$`},
						},
						{
							ID:            "A-SSE.3",
							Domain:        "Algebra",
							Cluster:       "Write expressions in equivalent forms to solve problems",
							Description:   "Choose and produce an equivalent form of an expression to reveal and explain properties of the quantity represented by the expression. Factor quadratic expressions, complete the square, use properties of exponents.",
							KeyVocabulary: []string{"quadratic", "factored form", "vertex form", "completing the square"},
							KeyFormulas:   []string{`$ax^2 + bx + c = a(x-r_1)(x-r_2)$`, `$a(x-h)^2 + k$ (vertex form)`},
						},
						{
							ID:            "A-APR.1",
							Domain:        "Algebra",
							Cluster:       "Perform arithmetic operations on polynomials",
							Description:   "Understand that polynomials form a system analogous to the integers; perform operations on polynomials (addition, subtraction, multiplication).",
							KeyVocabulary: []string{"polynomial", "degree", "leading coefficient", "like terms", "FOIL"},
						},
						{
							ID:            "A-CED.1",
							Domain:        "Algebra",
							Cluster:       "Create equations that describe numbers or relationships",
							Description:   "Create equations and inequalities in one variable and use them to solve problems.",
							KeyVocabulary: []string{"equation", "inequality", "variable", "constraint"},
						},
						{
							ID:            "A-CED.2",
							Domain:        "Algebra",
							Cluster:       "Create equations that describe numbers or relationships",
							Description:   "Create equations in two or more variables to represent relationships between quantities; graph equations on coordinate axes with labels and scales.",
							KeyVocabulary: []string{"linear equation", "slope", "intercept", "coordinate plane"},
							KeyFormulas:   []string{`$y = mx + b$`, `$Ax + By = C$`},
						},
						{
							ID:            "A-REI.1",
							Domain:        "Algebra",
							Cluster:       "Understand solving equations as a process of reasoning",
							Description:   "Explain each step in solving a simple equation as following from the equality of numbers asserted at the previous step.",
							KeyVocabulary: []string{"inverse operation", "equivalent equation", "properties of equality"},
						},
						{
							ID:            "A-REI.4",
							Domain:        "Algebra",
							Cluster:       "Solve equations and inequalities in one variable",
							Description:   "Solve quadratic equations in one variable. Use the method of completing the square to derive the quadratic formula.",
							KeyVocabulary: []string{"quadratic formula", "discriminant", "completing the square", "roots", "zeros"},
							KeyFormulas:   []string{`$x = \frac{-b \pm \sqrt{b^2 - 4ac}}{2a}$`, `Discriminant: $b^2 - 4ac$`},
						},
						{
							ID:            "A-REI.10",
							Domain:        "Algebra",
							Cluster:       "Represent and solve equations and inequalities graphically",
							Description:   "Understand that the graph of an equation in two variables is the set of all its solutions plotted in the coordinate plane.",
							KeyVocabulary: []string{"solution set", "graph", "coordinate plane", "x-intercept", "y-intercept"},
						},
					},
				},
				{
					Domain: "Functions",
					Standards: []Standard{
						{
							ID:            "F-IF.1",
							Domain:        "Functions",
							Cluster:       "Understand the concept of a function",
							Description:   "Understand that a function from one set to another assigns to each element of the domain exactly one element of the range.",
							KeyVocabulary: []string{"function", "domain", "range", "input", "output"},
						},
						{
							ID:            "F-IF.4",
							Domain:        "Functions",
							Cluster:       "Interpret functions that arise in applications",
							Description:   "For a function that models a relationship, interpret key features of graphs and tables: intercepts, intervals of increase/decrease, maxima/minima, symmetries, end behavior.",
							KeyVocabulary: []string{"intercept", "increasing", "decreasing", "maximum", "minimum", "symmetry"},
						},
						{
							ID:            "F-IF.7",
							Domain:        "Functions",
							Cluster:       "Analyze functions using different representations",
							Description:   "Graph functions expressed symbolically and show key features of the graph. Graph linear and quadratic functions and show intercepts, maxima, and minima.",
							KeyVocabulary: []string{"vertex", "axis of symmetry", "parabola", "linear graph"},
							KeyFormulas:   []string{`Vertex: $x = -\frac{b}{2a}$`},
						},
						{
							ID:            "F-BF.1",
							Domain:        "Functions",
							Cluster:       "Build a function that models a relationship",
							Description:   "Write a function that describes a relationship between two quantities. Determine an explicit expression, a recursive process, or steps for calculation from a context.",
							KeyVocabulary: []string{"explicit formula", "recursive formula", "model"},
						},
						{
							ID:            "F-LE.1",
							Domain:        "Functions",
							Cluster:       "Construct and compare linear, quadratic, and exponential models",
							Description:   "Distinguish between situations that can be modeled with linear vs. exponential functions. Recognize that linear functions grow by equal differences and exponential functions grow by equal factors.",
							KeyVocabulary: []string{"linear growth", "exponential growth", "rate of change", "growth factor"},
							KeyFormulas:   []string{`$f(x) = mx + b$`, `$f(x) = a \cdot b^x$`},
						},
					},
				},
				{
					Domain: "Statistics and Probability",
					Standards: []Standard{
						{
							ID:            "S-ID.1",
							Domain:        "Statistics and Probability",
							Cluster:       "Summarize, represent, and interpret data on a single count or measurement variable",
							Description:   "Represent data with plots on the real number line (dot plots, histograms, and box plots).",
							KeyVocabulary: []string{"dot plot", "histogram", "box plot", "distribution"},
						},
						{
							ID:            "S-ID.6",
							Domain:        "Statistics and Probability",
							Cluster:       "Summarize, represent, and interpret data on two quantitative variables",
							Description:   "Represent data on two quantitative variables on a scatter plot, and describe how the variables are related. Fit a function to the data and use it to solve problems.",
							KeyVocabulary: []string{"scatter plot", "line of best fit", "correlation", "residual"},
						},
					},
				},
			},
		},
		{
			Course: "Geometry",
			Domains: []DomainGroup{
				{
					Domain: "Congruence",
					Standards: []Standard{
						{
							ID:            "G-CO.1",
							Domain:        "Congruence",
							Cluster:       "Experiment with transformations in the plane",
							Description:   "Know precise definitions of angle, circle, perpendicular line, parallel line, and line segment, based on the undefined notions of point, line, distance along a line, and distance around a circular arc.",
							KeyVocabulary: []string{"angle", "circle", "perpendicular", "parallel", "line segment"},
						},
						{
							ID:            "G-CO.6",
							Domain:        "Congruence",
							Cluster:       "Understand congruence in terms of rigid motions",
							Description:   "Use geometric descriptions of rigid motions to transform figures and to predict the effect of a given rigid motion on a given figure.",
							KeyVocabulary: []string{"rigid motion", "reflection", "rotation", "translation", "congruent"},
						},
						{
							ID:            "G-CO.8",
							Domain:        "Congruence",
							Cluster:       "Understand congruence in terms of rigid motions",
							Description:   "Explain how the criteria for triangle congruence (ASA, SAS, SSS) follow from the definition of congruence in terms of rigid motions.",
							KeyVocabulary: []string{"ASA", "SAS", "SSS", "triangle congruence", "CPCTC"},
						},
						{
							ID:            "G-CO.10",
							Domain:        "Congruence",
							Cluster:       "Prove geometric theorems",
							Description:   "Prove theorems about triangles. Measures of interior angles of a triangle sum to 180°. Base angles of isosceles triangles are congruent.",
							KeyVocabulary: []string{"triangle angle sum", "isosceles triangle", "exterior angle", "proof"},
							KeyFormulas:   []string{`Sum of interior angles: $180°$`},
						},
						{
							ID:            "G-CO.11",
							Domain:        "Congruence",
							Cluster:       "Prove geometric theorems",
							Description:   "Prove theorems about parallelograms. Opposite sides are congruent, opposite angles are congruent, diagonals bisect each other.",
							KeyVocabulary: []string{"parallelogram", "opposite sides", "opposite angles", "diagonal", "bisect"},
						},
					},
				},
				{
					Domain: "Similarity, Right Triangles, and Trigonometry",
					Standards: []Standard{
						{
							ID:            "G-SRT.1",
							Domain:        "Similarity, Right Triangles, and Trigonometry",
							Cluster:       "Understand similarity in terms of similarity transformations",
							Description:   "Verify experimentally the properties of dilations given by a center and a scale factor.",
							KeyVocabulary: []string{"dilation", "scale factor", "center of dilation", "similar"},
						},
						{
							ID:            "G-SRT.4",
							Domain:        "Similarity, Right Triangles, and Trigonometry",
							Cluster:       "Prove theorems involving similarity",
							Description:   "Prove theorems about triangles using similarity: a line parallel to one side divides the other two proportionally, and the Pythagorean Theorem proved using triangle similarity.",
							KeyVocabulary: []string{"proportional sides", "AA similarity", "SAS similarity", "SSS similarity"},
							KeyFormulas:   []string{`$\frac{a}{b} = \frac{c}{d}$`},
						},
						{
							ID:            "G-SRT.5",
							Domain:        "Similarity, Right Triangles, and Trigonometry",
							Cluster:       "Prove theorems involving similarity",
							Description:   "Use congruence and similarity criteria for triangles to solve problems and to prove relationships in geometric figures.",
							KeyVocabulary: []string{"similar triangles", "congruent triangles", "corresponding parts"},
						},
						{
							ID:            "G-SRT.6",
							Domain:        "Similarity, Right Triangles, and Trigonometry",
							Cluster:       "Define trigonometric ratios and solve problems involving right triangles",
							Description:   "Understand that by similarity, side ratios in right triangles are properties of the angles in the triangle, leading to definitions of trigonometric ratios for acute angles.",
							KeyVocabulary: []string{"sine", "cosine", "tangent", "opposite", "adjacent", "hypotenuse", "SOH-CAH-TOA"},
							KeyFormulas: []string{
								`$\sin(\theta) = \frac{\text{opposite}}{\text{hypotenuse}}$`,
								`$\cos(\theta) = \frac{\text{adjacent}}{\text{hypotenuse}}$`,
								`$\tan(\theta) = \frac{\text{opposite}}{\text{adjacent}}$`,
							},
						},
						{
							ID:            "G-SRT.7",
							Domain:        "Similarity, Right Triangles, and Trigonometry",
							Cluster:       "Define trigonometric ratios and solve problems involving right triangles",
							Description:   "Explain and use the relationship between the sine and cosine of complementary angles.",
							KeyVocabulary: []string{"complementary angles", "cofunction", "sine", "cosine"},
							KeyFormulas:   []string{`$\sin(\theta) = \cos(90° - \theta)$`},
						},
						{
							ID:            "G-SRT.8",
							Domain:        "Similarity, Right Triangles, and Trigonometry",
							Cluster:       "Define trigonometric ratios and solve problems involving right triangles",
							Description:   "Use trigonometric ratios and the Pythagorean Theorem to solve right triangles in applied problems.",
							KeyVocabulary: []string{"Pythagorean Theorem", "angle of elevation", "angle of depression", "solve a triangle"},
							KeyFormulas:   []string{`$a^2 + b^2 = c^2$`, `$\sin(\theta) = \frac{\text{opp}}{\text{hyp}}$`},
						},
					},
				},
				{
					Domain: "Circles",
					Standards: []Standard{
						{
							ID:            "G-C.1",
							Domain:        "Circles",
							Cluster:       "Understand and apply theorems about circles",
							Description:   "Prove that all circles are similar.",
							KeyVocabulary: []string{"circle", "similarity", "radius", "dilation"},
						},
						{
							ID:            "G-C.2",
							Domain:        "Circles",
							Cluster:       "Understand and apply theorems about circles",
							Description:   "Identify and describe relationships among inscribed angles, radii, and chords. Include central angles, inscribed angles, circumscribed angles, and the relationship between central and inscribed angles.",
							KeyVocabulary: []string{"inscribed angle", "central angle", "chord", "arc", "circumscribed angle"},
							KeyFormulas:   []string{`Inscribed angle = $\frac{1}{2}$ central angle`, `Arc length = $\frac{\theta}{360} \cdot 2\pi r$`},
						},
						{
							ID:            "G-C.5",
							Domain:        "Circles",
							Cluster:       "Find arc lengths and areas of sectors of circles",
							Description:   "Derive using similarity the fact that the length of the arc intercepted by an angle is proportional to the radius, and define the radian measure of the angle. Derive the formula for the area of a sector.",
							KeyVocabulary: []string{"arc length", "sector", "radian", "central angle"},
							KeyFormulas:   []string{`Arc length: $s = r\theta$`, `Sector area: $A = \frac{1}{2}r^2\theta$`},
						},
					},
				},
				{
					Domain: "Expressing Geometric Properties with Equations",
					Standards: []Standard{
						{
							ID:            "G-GPE.1",
							Domain:        "Expressing Geometric Properties with Equations",
							Cluster:       "Translate between the geometric description and the equation for a conic section",
							Description:   "Derive the equation of a circle of given center and radius using the Pythagorean Theorem; complete the square to find the center and radius of a circle given by an equation.",
							KeyVocabulary: []string{"circle equation", "center", "radius", "completing the square"},
							KeyFormulas:   []string{`$(x-h)^2 + (y-k)^2 = r^2$`},
						},
						{
							ID:            "G-GPE.4",
							Domain:        "Expressing Geometric Properties with Equations",
							Cluster:       "Use coordinates to prove simple geometric theorems algebraically",
							Description:   "Use coordinates to prove simple geometric theorems algebraically. For example, prove that the diagonals of a rectangle are congruent.",
							KeyVocabulary: []string{"coordinate proof", "midpoint", "distance", "slope"},
							KeyFormulas: []string{
								`Distance: $d = \sqrt{(x_2 - x_1)^2 + (y_2 - y_1)^2}$`,
								`Midpoint: $M = \left(\frac{x_1+x_2}{2}, \frac{y_1+y_2}{2}\right)$`,
							},
						},
						{
							ID:            "G-GPE.7",
							Domain:        "Expressing Geometric Properties with Equations",
							Cluster:       "Use coordinates to prove simple geometric theorems algebraically",
							Description:   "Use coordinates to compute perimeters of polygons and areas of triangles and rectangles.",
							KeyVocabulary: []string{"perimeter", "area", "coordinate geometry"},
							KeyFormulas: []string{
								`Distance formula for perimeter`,
								`Area of triangle: $A = \frac{1}{2}|x_1(y_2 - y_3) + x_2(y_3 - y_1) + x_3(y_1 - y_2)|$`,
							},
						},
					},
				},
				{
					Domain: "Geometric Measurement and Dimension",
					Standards: []Standard{
						{
							ID:            "G-GMD.1",
							Domain:        "Geometric Measurement and Dimension",
							Cluster:       "Explain volume formulas and use them to solve problems",
							Description:   "Give an informal argument for the formulas for the circumference of a circle, area of a circle, volume of a cylinder, pyramid, and cone.",
							KeyVocabulary: []string{"circumference", "area", "volume", "cylinder", "pyramid", "cone"},
							KeyFormulas: []string{
								`$C = 2\pi r$`,
								`$A = \pi r^2$`,
								`$V_{\text{cylinder}} = \pi r^2 h$`,
								`$V_{\text{cone}} = \frac{1}{3}\pi r^2 h$`,
								`$V_{\text{pyramid}} = \frac{1}{3}Bh$`,
							},
						},
						{
							ID:            "G-GMD.3",
							Domain:        "Geometric Measurement and Dimension",
							Cluster:       "Explain volume formulas and use them to solve problems",
							Description:   "Use volume formulas for cylinders, pyramids, cones, and spheres to solve problems.",
							KeyVocabulary: []string{"volume", "sphere", "composite solid"},
							KeyFormulas:   []string{`$V_{\text{sphere}} = \frac{4}{3}\pi r^3$`},
						},
					},
				},
			},
		},
		{
			Course: "Algebra II",
			Domains: []DomainGroup{
				{
					Domain: "Number and Quantity",
					Standards: []Standard{
						{
							ID:            "N-CN.1",
							Domain:        "Number and Quantity",
							Cluster:       "Perform arithmetic operations with complex numbers",
							Description:   "Know there is a complex number $i$ such that $i^2 = -1$, and every complex number has the form $a + bi$ with $a$ and $b$ real.",
							KeyVocabulary: []string{"complex number", "imaginary unit", "real part", "imaginary part"},
							KeyFormulas:   []string{`$i^2 = -1$`, `$z = a + bi$`},
						},
						{
							ID:            "N-CN.7",
							Domain:        "Number and Quantity",
							Cluster:       "Use complex numbers in polynomial identities and equations",
							Description:   "Solve quadratic equations with real coefficients that have complex solutions.",
							KeyVocabulary: []string{"complex roots", "conjugate pair", "discriminant"},
							KeyFormulas:   []string{`$x = \frac{-b \pm \sqrt{b^2 - 4ac}}{2a}$`},
						},
					},
				},
				{
					Domain: "Algebra",
					Standards: []Standard{
						{
							ID:            "A-SSE.4",
							Domain:        "Algebra",
							Cluster:       "Write expressions in equivalent forms to solve problems",
							Description:   "Derive the formula for the sum of a finite geometric series, and use the formula to solve problems.",
							KeyVocabulary: []string{"geometric series", "common ratio", "partial sum"},
							KeyFormulas:   []string{`$S_n = a_1 \cdot \frac{1 - r^n}{1 - r}$`},
						},
						{
							ID:            "A-APR.2",
							Domain:        "Algebra",
							Cluster:       "Understand the relationship between zeros and factors of polynomials",
							Description:   "Know and apply the Remainder Theorem: for a polynomial $p(x)$ and a number $a$, the remainder on division by $(x - a)$ is $p(a)$.",
							KeyVocabulary: []string{"Remainder Theorem", "Factor Theorem", "synthetic division", "polynomial division"},
							KeyFormulas:   []string{`$p(x) = (x-a)q(x) + p(a)$`},
						},
						{
							ID:            "A-APR.3",
							Domain:        "Algebra",
							Cluster:       "Understand the relationship between zeros and factors of polynomials",
							Description:   "Identify zeros of polynomials when suitable factorizations are available, and use the zeros to construct a rough graph of the function defined by the polynomial.",
							KeyVocabulary: []string{"zeros", "roots", "x-intercepts", "factored form", "multiplicity"},
						},
						{
							ID:            "A-REI.2",
							Domain:        "Algebra",
							Cluster:       "Understand solving equations as a process of reasoning",
							Description:   "Solve simple rational and radical equations in one variable, and give examples showing how extraneous solutions may arise.",
							KeyVocabulary: []string{"rational equation", "radical equation", "extraneous solution"},
						},
						{
							ID:            "A-REI.11",
							Domain:        "Algebra",
							Cluster:       "Represent and solve equations and inequalities graphically",
							Description:   "Explain why the x-coordinates of the points where the graphs of $y = f(x)$ and $y = g(x)$ intersect are the solutions of $f(x) = g(x)$.",
							KeyVocabulary: []string{"system of equations", "intersection", "graphical solution"},
						},
					},
				},
				{
					Domain: "Functions",
					Standards: []Standard{
						{
							ID:            "F-IF.7e",
							Domain:        "Functions",
							Cluster:       "Analyze functions using different representations",
							Description:   "Graph exponential and logarithmic functions, showing intercepts and end behavior, and trigonometric functions, showing period, midline, and amplitude.",
							KeyVocabulary: []string{"exponential function", "logarithmic function", "asymptote", "end behavior"},
							KeyFormulas:   []string{`$f(x) = a \cdot b^x$`, `$f(x) = \log_b(x)$`},
						},
						{
							ID:            "F-BF.3",
							Domain:        "Functions",
							Cluster:       "Build new functions from existing functions",
							Description:   "Identify the effect on the graph of replacing $f(x)$ by $f(x)+k$, $kf(x)$, $f(kx)$, and $f(x+k)$ for specific values of $k$. Find the value of $k$ given the graphs.",
							KeyVocabulary: []string{"transformation", "vertical shift", "horizontal shift", "reflection", "stretch", "compression"},
						},
						{
							ID:            "F-BF.4",
							Domain:        "Functions",
							Cluster:       "Build new functions from existing functions",
							Description:   "Find inverse functions. Solve an equation of the form $f(x) = c$ for a simple function $f$ that has an inverse and write an expression for the inverse.",
							KeyVocabulary: []string{"inverse function", "one-to-one", "horizontal line test"},
							KeyFormulas:   []string{`$f(f^{-1}(x)) = x$`},
						},
						{
							ID:            "F-LE.4",
							Domain:        "Functions",
							Cluster:       "Construct and compare linear, quadratic, and exponential models",
							Description:   "For exponential models, express as a logarithm the solution to $ab^{ct} = d$ where $a$, $c$, and $d$ are numbers and the base $b$ is 2, 10, or $e$.",
							KeyVocabulary: []string{"logarithm", "natural log", "common log", "exponential equation"},
							KeyFormulas:   []string{`$\log_b(x) = \frac{\ln(x)}{\ln(b)}$`},
						},
					},
				},
			},
		},
		{
			Course: "Precalculus",
			Domains: []DomainGroup{
				{
					Domain: "Number and Quantity",
					Standards: []Standard{
						{
							ID:            "N-CN.3",
							Domain:        "Number and Quantity",
							Cluster:       "Perform arithmetic operations with complex numbers",
							Description:   "Find the conjugate of a complex number; use conjugates to find moduli and quotients of complex numbers.",
							KeyVocabulary: []string{"conjugate", "modulus", "complex division"},
							KeyFormulas:   []string{`$|a + bi| = \sqrt{a^2 + b^2}$`, `$\frac{a+bi}{c+di} = \frac{(a+bi)(c-di)}{c^2+d^2}$`},
						},
						{
							ID:            "N-VM.1",
							Domain:        "Number and Quantity",
							Cluster:       "Represent and model with vector quantities",
							Description:   "Recognize vector quantities as having both magnitude and direction. Represent vector quantities by directed line segments, and use appropriate symbols.",
							KeyVocabulary: []string{"vector", "magnitude", "direction", "component form"},
							KeyFormulas:   []string{`$|\vec{v}| = \sqrt{v_x^2 + v_y^2}$`},
						},
					},
				},
				{
					Domain: "Functions",
					Standards: []Standard{
						{
							ID:            "F-TF.1",
							Domain:        "Functions",
							Cluster:       "Extend the domain of trigonometric functions using the unit circle",
							Description:   "Understand radian measure of an angle as the length of the arc on the unit circle subtended by the angle.",
							KeyVocabulary: []string{"radian", "unit circle", "arc length", "degree"},
							KeyFormulas:   []string{`$\pi \text{ radians} = 180°$`, `$s = r\theta$`},
						},
						{
							ID:            "F-TF.2",
							Domain:        "Functions",
							Cluster:       "Extend the domain of trigonometric functions using the unit circle",
							Description:   "Explain how the unit circle in the coordinate plane enables the extension of trigonometric functions to all real numbers, interpreted as radian measures of angles traversed counterclockwise around the unit circle.",
							KeyVocabulary: []string{"unit circle", "reference angle", "quadrant", "periodic"},
							KeyFormulas:   []string{`$\sin^2(\theta) + \cos^2(\theta) = 1$`},
						},
						{
							ID:            "F-TF.5",
							Domain:        "Functions",
							Cluster:       "Model periodic phenomena with trigonometric functions",
							Description:   "Choose trigonometric functions to model periodic phenomena with specified amplitude, frequency, and midline.",
							KeyVocabulary: []string{"amplitude", "period", "frequency", "midline", "phase shift"},
							KeyFormulas:   []string{`$y = A\sin(B(x - C)) + D$`, `Period: $\frac{2\pi}{|B|}$`},
						},
						{
							ID:            "F-TF.8",
							Domain:        "Functions",
							Cluster:       "Prove and apply trigonometric identities",
							Description:   `Prove the Pythagorean identity $\sin^2(\theta) + \cos^2(\theta) = 1$ and use it to find $\sin(\theta)$, $\cos(\theta)$, or $\tan(\theta)$ given one of these values and the quadrant.`,
							KeyVocabulary: []string{"Pythagorean identity", "trigonometric identity", "quadrant"},
							KeyFormulas:   []string{`$\sin^2(\theta) + \cos^2(\theta) = 1$`, `$1 + \tan^2(\theta) = \sec^2(\theta)$`},
						},
					},
				},
				{
					Domain: "Algebra",
					Standards: []Standard{
						{
							ID:            "A-APR.6",
							Domain:        "Algebra",
							Cluster:       "Rewrite rational expressions",
							Description:   "Rewrite simple rational expressions in different forms; write $a(x)/b(x)$ in the form $q(x) + r(x)/b(x)$, where $a(x)$, $b(x)$, $q(x)$, and $r(x)$ are polynomials.",
							KeyVocabulary: []string{"rational expression", "polynomial long division", "quotient", "remainder"},
						},
						{
							ID:            "A-APR.7",
							Domain:        "Algebra",
							Cluster:       "Rewrite rational expressions",
							Description:   "Understand that rational expressions form a system analogous to the rational numbers, closed under addition, subtraction, multiplication, and division by a nonzero rational expression.",
							KeyVocabulary: []string{"rational expression", "common denominator", "simplify"},
						},
					},
				},
			},
		},
	}
}
