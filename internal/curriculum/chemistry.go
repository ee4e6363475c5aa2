package curriculum

// chemistryStandards returns the STE chemistry dataset, aligned with
// the NGSS physical science standards for high school chemistry plus
// the AP Chemistry course framework. Same ordering rules as the
// mathematics dataset.
func chemistryStandards() []CourseStandards {
	return []CourseStandards{
		{
			Course: "Chemistry I",
			Domains: []DomainGroup{
				{
					Domain: "Structure and Properties of Matter",
					Standards: []Standard{
						{
							ID:            "HS-PS1.1",
							Domain:        "Structure and Properties of Matter",
							Cluster:       "Atomic structure and the periodic table",
							Description:   "Use the periodic table as a model to predict the relative properties of elements based on the patterns of electrons in the outermost energy level of atoms.",
							KeyVocabulary: []string{"atomic number", "electron configuration", "valence electrons", "periodic trends", "electronegativity", "ionization energy", "atomic radius"},
							KeyFormulas:   []string{`$Z = \text{number of protons}$`, `$e^- \text{ configuration: } 1s^2 2s^2 2p^6 ...$`},
						},
						{
							ID:            "HS-PS1.2",
							Domain:        "Structure and Properties of Matter",
							Cluster:       "Chemical bonding and molecular structure",
							Description:   "Construct and revise an explanation for the outcome of a simple chemical reaction based on the outermost electron states of atoms, trends in the periodic table, and knowledge of the patterns of chemical properties.",
							KeyVocabulary: []string{"ionic bond", "covalent bond", "metallic bond", "Lewis structure", "octet rule", "bond polarity", "electronegativity difference"},
							KeyFormulas:   []string{`$\Delta \text{EN} > 1.7 \Rightarrow \text{ionic}$`, `$\Delta \text{EN} < 1.7 \Rightarrow \text{covalent}$`},
						},
						{
							ID:            "HS-PS1.3",
							Domain:        "Structure and Properties of Matter",
							Cluster:       "Intermolecular forces and properties of matter",
							Description:   "Plan and conduct an investigation to gather evidence to compare the structure of substances at the bulk scale to infer the strength of electrical forces between particles.",
							KeyVocabulary: []string{"intermolecular forces", "London dispersion forces", "dipole-dipole interactions", "hydrogen bonding", "boiling point", "melting point", "solubility"},
							KeyFormulas:   []string{`$\text{IMF strength: ionic} > \text{H-bonding} > \text{dipole-dipole} > \text{London dispersion}$`},
						},
					},
				},
				{
					Domain: "Chemical Reactions",
					Standards: []Standard{
						{
							ID:            "HS-PS1.4",
							Domain:        "Chemical Reactions",
							Cluster:       "Types and evidence of chemical reactions",
							Description:   "Develop a model to illustrate that the release or absorption of energy from a chemical reaction system depends upon the changes in total bond energy.",
							KeyVocabulary: []string{"exothermic", "endothermic", "bond energy", "activation energy", "enthalpy", "reaction coordinate diagram"},
							KeyFormulas:   []string{`$\Delta H = \sum E_{\text{bonds broken}} - \sum E_{\text{bonds formed}}$`, `$\Delta H < 0 \Rightarrow \text{exothermic}$`, `$\Delta H > 0 \Rightarrow \text{endothermic}$`},
						},
						{
							ID:            "HS-PS1.5",
							Domain:        "Chemical Reactions",
							Cluster:       "Reaction rates and factors affecting them",
							Description:   "Apply scientific principles and evidence to provide an explanation about the effects of changing the temperature or concentration of the reacting particles on the rate at which a reaction occurs.",
							KeyVocabulary: []string{"reaction rate", "collision theory", "activation energy", "catalyst", "concentration", "temperature", "surface area"},
							KeyFormulas:   []string{`$\text{rate} \propto \text{frequency of effective collisions}$`, `$\text{rate} = k[A]^m[B]^n$`},
						},
						{
							ID:            "HS-PS1.7",
							Domain:        "Chemical Reactions",
							Cluster:       "Conservation of matter and stoichiometry",
							Description:   "Use mathematical representations to support the claim that atoms, and therefore mass, are conserved during a chemical reaction.",
							KeyVocabulary: []string{"law of conservation of mass", "stoichiometry", "molar mass", "mole", "Avogadro's number", "balanced equation", "limiting reagent"},
							KeyFormulas:   []string{`$n = \frac{m}{M}$`, `$N_A = 6.022 \times 10^{23} \text{ mol}^{-1}$`, `$\text{mole ratio from balanced equation}$`},
						},
					},
				},
				{
					Domain: "Energy in Chemical Processes",
					Standards: []Standard{
						{
							ID:            "HS-PS3.1",
							Domain:        "Energy in Chemical Processes",
							Cluster:       "Definitions and conservation of energy",
							Description:   "Create a computational model to calculate the change in the energy of one component in a system when the change in energy of the other component(s) and energy flows in and out of the system are known.",
							KeyVocabulary: []string{"system", "surroundings", "heat", "work", "internal energy", "specific heat capacity", "calorimetry"},
							KeyFormulas:   []string{`$q = mc\Delta T$`, `$q = nC\Delta T$`, `$\Delta E = q + w$`},
						},
						{
							ID:            "HS-PS3.2",
							Domain:        "Energy in Chemical Processes",
							Cluster:       "Energy transfer in chemical processes",
							Description:   "Develop and use models to illustrate that energy at the macroscopic scale can be accounted for as a combination of energy associated with the motions of particles (objects) and energy associated with the relative positions of particles (objects).",
							KeyVocabulary: []string{"kinetic energy", "potential energy", "thermal energy", "chemical potential energy", "phase change", "heat of fusion", "heat of vaporization"},
							KeyFormulas:   []string{`$q = n \Delta H_{\text{fus}}$`, `$q = n \Delta H_{\text{vap}}$`, `$KE = \frac{1}{2}mv^2$`},
						},
					},
				},
			},
		},
		{
			Course: "Honors Chemistry",
			Domains: []DomainGroup{
				{
					Domain: "Structure and Properties of Matter",
					Standards: []Standard{
						{
							ID:            "HS-PS1.1a",
							Domain:        "Structure and Properties of Matter",
							Cluster:       "Advanced atomic structure and quantum model",
							Description:   "Use the periodic table as a model to predict the relative properties of elements based on the patterns of electrons in the outermost energy level of atoms. Extend to quantum mechanical model including orbital shapes, electron spin, and Aufbau principle.",
							KeyVocabulary: []string{"quantum numbers", "orbital", "electron spin", "Aufbau principle", "Hund's rule", "Pauli exclusion principle", "shielding effect", "effective nuclear charge"},
							KeyFormulas:   []string{`$n, l, m_l, m_s$ (quantum numbers)`, `$Z_{\text{eff}} = Z - \sigma$`, `$E_n = -\frac{13.6 \text{ eV}}{n^2}$ (hydrogen atom)`},
						},
						{
							ID:            "HS-PS1.2a",
							Domain:        "Structure and Properties of Matter",
							Cluster:       "Advanced bonding and molecular geometry",
							Description:   "Construct and revise an explanation for the outcome of a simple chemical reaction based on the outermost electron states of atoms. Extend to VSEPR theory, molecular geometry predictions, and hybridization of atomic orbitals.",
							KeyVocabulary: []string{"VSEPR theory", "molecular geometry", "hybridization", "sigma bond", "pi bond", "resonance structure", "formal charge", "bond order"},
							KeyFormulas:   []string{`$\text{formal charge} = V - N - \frac{B}{2}$`, `$\text{bond order} = \frac{\text{bonding } e^- - \text{antibonding } e^-}{2}$`},
						},
						{
							ID:            "HS-PS1.3a",
							Domain:        "Structure and Properties of Matter",
							Cluster:       "Intermolecular forces and colligative properties",
							Description:   "Plan and conduct an investigation to compare the structure of substances at the bulk scale to infer the strength of electrical forces between particles. Extend to colligative properties and their quantitative relationships.",
							KeyVocabulary: []string{"colligative properties", "boiling point elevation", "freezing point depression", "osmotic pressure", "vapor pressure lowering", "van 't Hoff factor", "molality"},
							KeyFormulas:   []string{`$\Delta T_b = iK_bm$`, `$\Delta T_f = iK_fm$`, `$\pi = iMRT$`, `$P_{\text{solution}} = X_{\text{solvent}} P^\circ_{\text{solvent}}$`},
						},
					},
				},
				{
					Domain: "Chemical Reactions",
					Standards: []Standard{
						{
							ID:            "HS-PS1.4a",
							Domain:        "Chemical Reactions",
							Cluster:       "Advanced energy changes in reactions",
							Description:   "Develop a model to illustrate that the release or absorption of energy from a chemical reaction system depends upon the changes in total bond energy. Extend to Hess's law calculations and standard enthalpies of formation.",
							KeyVocabulary: []string{"Hess's law", "enthalpy of formation", "standard state", "state function", "enthalpy diagram", "calorimetry"},
							KeyFormulas:   []string{`$\Delta H^\circ_{\text{rxn}} = \sum \Delta H^\circ_f (\text{products}) - \sum \Delta H^\circ_f (\text{reactants})$`, `$\Delta H_{\text{total}} = \Delta H_1 + \Delta H_2 + \Delta H_3 + ...$`},
						},
						{
							ID:            "HS-PS1.5a",
							Domain:        "Chemical Reactions",
							Cluster:       "Reaction rates and rate laws",
							Description:   "Apply scientific principles and evidence to provide an explanation about the effects of changing the temperature or concentration of the reacting particles on the rate at which a reaction occurs. Extend to quantitative rate law expressions and the Arrhenius equation.",
							KeyVocabulary: []string{"rate law", "rate constant", "order of reaction", "half-life", "Arrhenius equation", "integrated rate law", "reaction mechanism"},
							KeyFormulas:   []string{`$\text{rate} = k[A]^m[B]^n$`, `$k = Ae^{-E_a/RT}$`, `$t_{1/2} = \frac{0.693}{k}$ (first order)`, `$\ln k = -\frac{E_a}{R}\left(\frac{1}{T}\right) + \ln A$`},
						},
						{
							ID:            "HS-PS1.7a",
							Domain:        "Chemical Reactions",
							Cluster:       "Conservation of matter and advanced stoichiometry",
							Description:   "Use mathematical representations to support the claim that atoms, and therefore mass, are conserved during a chemical reaction. Extend to solution stoichiometry, titration calculations, and gas stoichiometry.",
							KeyVocabulary: []string{"molarity", "dilution", "titration", "equivalence point", "gas stoichiometry", "percent yield", "theoretical yield"},
							KeyFormulas:   []string{`$M = \frac{n}{V}$`, `$M_1V_1 = M_2V_2$`, `$PV = nRT$`, `$\text{\% yield} = \frac{\text{actual yield}}{\text{theoretical yield}} \times 100$`},
						},
					},
				},
				{
					Domain: "Nuclear Chemistry",
					Standards: []Standard{
						{
							ID:            "HS-PS1.8",
							Domain:        "Nuclear Chemistry",
							Cluster:       "Nuclear processes and radioactivity",
							Description:   "Develop models to illustrate the changes in the composition of the nucleus of the atom and the energy released during the processes of fission, fusion, and radioactive decay.",
							KeyVocabulary: []string{"alpha decay", "beta decay", "gamma radiation", "fission", "fusion", "half-life", "mass defect", "binding energy", "isotope", "nuclear equation"},
							KeyFormulas:   []string{`$^A_Z X \rightarrow ^{A-4}_{Z-2} Y + ^4_2 He$ (alpha decay)`, `$^A_Z X \rightarrow ^A_{Z+1} Y + ^0_{-1} e$ (beta decay)`, `$N(t) = N_0 \left(\frac{1}{2}\right)^{t/t_{1/2}}$`, `$E = mc^2$`},
						},
					},
				},
				{
					Domain: "Thermodynamics",
					Standards: []Standard{
						{
							ID:            "HS-PS3.4",
							Domain:        "Thermodynamics",
							Cluster:       "Entropy and spontaneity",
							Description:   "Plan and conduct an investigation to provide evidence that the transfer of thermal energy when two components of different temperature are combined within a closed system results in a more uniform energy distribution among the components (second law of thermodynamics).",
							KeyVocabulary: []string{"entropy", "spontaneous process", "second law of thermodynamics", "Gibbs free energy", "thermodynamic favorability", "microstates"},
							KeyFormulas:   []string{`$\Delta G = \Delta H - T\Delta S$`, `$\Delta G < 0 \Rightarrow \text{spontaneous}$`, `$\Delta S_{\text{universe}} > 0$ (spontaneous process)`},
						},
					},
				},
				{
					Domain: "Kinetics and Equilibrium",
					Standards: []Standard{
						{
							ID:            "HS-PS1.5b",
							Domain:        "Kinetics and Equilibrium",
							Cluster:       "Chemical equilibrium fundamentals",
							Description:   "Apply scientific principles to explain how a system at equilibrium responds to stresses including changes in concentration, temperature, and pressure. Use Le Chatelier's principle to predict shifts in equilibrium position.",
							KeyVocabulary: []string{"dynamic equilibrium", "Le Chatelier's principle", "equilibrium constant", "equilibrium expression", "reaction quotient", "stress on equilibrium"},
							KeyFormulas:   []string{`$K_{eq} = \frac{[C]^c[D]^d}{[A]^a[B]^b}$`, `$Q$ vs $K$: $Q < K$ shifts right, $Q > K$ shifts left`, `$K_p = K_c(RT)^{\Delta n}$`},
						},
					},
				},
			},
		},
		{
			Course: "Chemistry II",
			Domains: []DomainGroup{
				{
					Domain: "Chemical Kinetics",
					Standards: []Standard{
						{
							ID:            "HS-PS1.5c",
							Domain:        "Chemical Kinetics",
							Cluster:       "Advanced rate laws and reaction mechanisms",
							Description:   "Determine the rate law for a reaction from experimental data. Analyze integrated rate laws for zero, first, and second order reactions including graphical methods for determining reaction order.",
							KeyVocabulary: []string{"rate law", "integrated rate law", "zero order", "first order", "second order", "method of initial rates", "rate-determining step"},
							KeyFormulas:   []string{`$[A] = -kt + [A]_0$ (zero order)`, `$\ln[A] = -kt + \ln[A]_0$ (first order)`, `$\frac{1}{[A]} = kt + \frac{1}{[A]_0}$ (second order)`, `$t_{1/2} = \frac{[A]_0}{2k}$ (zero order)`},
						},
						{
							ID:            "HS-PS1.5d",
							Domain:        "Chemical Kinetics",
							Cluster:       "Reaction mechanisms and catalysis",
							Description:   "Evaluate a proposed reaction mechanism to determine consistency with the experimentally determined rate law. Analyze the role of catalysts including enzyme kinetics and heterogeneous catalysis.",
							KeyVocabulary: []string{"elementary step", "reaction intermediate", "rate-determining step", "molecularity", "catalyst", "enzyme kinetics", "Michaelis-Menten", "transition state"},
							KeyFormulas:   []string{`$k = Ae^{-E_a/RT}$`, `$\ln\frac{k_2}{k_1} = \frac{E_a}{R}\left(\frac{1}{T_1} - \frac{1}{T_2}\right)$`, `$v = \frac{V_{\max}[S]}{K_m + [S]}$ (Michaelis-Menten)`},
						},
					},
				},
				{
					Domain: "Chemical Equilibrium",
					Standards: []Standard{
						{
							ID:            "HS-PS1.5e",
							Domain:        "Chemical Equilibrium",
							Cluster:       "Quantitative equilibrium analysis",
							Description:   "Calculate equilibrium concentrations using ICE tables and equilibrium constant expressions. Relate Kp and Kc for gaseous equilibria and analyze the effects of temperature on equilibrium constants.",
							KeyVocabulary: []string{"ICE table", "equilibrium constant", "reaction quotient", "Le Chatelier's principle", "Kp", "Kc", "homogeneous equilibrium", "heterogeneous equilibrium"},
							KeyFormulas:   []string{`$K_c = \frac{[C]^c[D]^d}{[A]^a[B]^b}$`, `$K_p = K_c(RT)^{\Delta n}$`, `$\Delta G^\circ = -RT \ln K$`, `$\ln\frac{K_2}{K_1} = -\frac{\Delta H^\circ}{R}\left(\frac{1}{T_2} - \frac{1}{T_1}\right)$`},
						},
						{
							ID:            "HS-PS1.5f",
							Domain:        "Chemical Equilibrium",
							Cluster:       "Solubility equilibria",
							Description:   "Apply equilibrium principles to solubility processes. Calculate molar solubility from Ksp, predict precipitation using ion product, and analyze the common ion effect on solubility.",
							KeyVocabulary: []string{"solubility product", "Ksp", "molar solubility", "ion product", "common ion effect", "selective precipitation", "complex ion formation"},
							KeyFormulas:   []string{`$K_{sp} = [\text{cation}]^m[\text{anion}]^n$`, `$Q_{sp} > K_{sp} \Rightarrow \text{precipitate forms}$`, `$Q_{sp} < K_{sp} \Rightarrow \text{no precipitate}$`},
						},
					},
				},
				{
					Domain: "Acid-Base Chemistry",
					Standards: []Standard{
						{
							ID:            "HS-PS1.5g",
							Domain:        "Acid-Base Chemistry",
							Cluster:       "Acid-base theory and pH calculations",
							Description:   "Apply Bronsted-Lowry acid-base theory to identify conjugate acid-base pairs. Calculate pH for strong and weak acids and bases, and analyze buffer solutions using the Henderson-Hasselbalch equation.",
							KeyVocabulary: []string{"Bronsted-Lowry acid", "Bronsted-Lowry base", "conjugate acid", "conjugate base", "Ka", "Kb", "pH", "pOH", "autoionization", "amphoteric"},
							KeyFormulas:   []string{`$pH = -\log[H_3O^+]$`, `$pOH = -\log[OH^-]$`, `$pH + pOH = 14$ (at 25°C)`, `$K_w = [H_3O^+][OH^-] = 1.0 \times 10^{-14}$`, `$K_a \times K_b = K_w$`},
						},
						{
							ID:            "HS-PS1.5h",
							Domain:        "Acid-Base Chemistry",
							Cluster:       "Buffers and titrations",
							Description:   "Design and analyze buffer solutions. Interpret titration curves for strong acid-strong base, weak acid-strong base, and polyprotic acid titrations. Identify equivalence points and select appropriate indicators.",
							KeyVocabulary: []string{"buffer solution", "buffer capacity", "Henderson-Hasselbalch equation", "titration curve", "equivalence point", "half-equivalence point", "indicator", "polyprotic acid"},
							KeyFormulas:   []string{`$pH = pK_a + \log\frac{[A^-]}{[HA]}$`, `$\text{at half-equivalence: } pH = pK_a$`, `$n_{\text{acid}} = n_{\text{base}}$ (at equivalence point)`},
						},
					},
				},
				{
					Domain: "Electrochemistry",
					Standards: []Standard{
						{
							ID:            "HS-PS1.6",
							Domain:        "Electrochemistry",
							Cluster:       "Oxidation-reduction and electrochemical cells",
							Description:   "Design and refine a solution to a complex real-world problem by applying scientific principles about the role of oxidation-reduction reactions in electrochemical cells, including galvanic and electrolytic cells.",
							KeyVocabulary: []string{"oxidation", "reduction", "oxidizing agent", "reducing agent", "galvanic cell", "electrolytic cell", "anode", "cathode", "cell potential", "standard reduction potential"},
							KeyFormulas:   []string{`$E^\circ_{\text{cell}} = E^\circ_{\text{cathode}} - E^\circ_{\text{anode}}$`, `$\Delta G^\circ = -nFE^\circ_{\text{cell}}$`, `$E = E^\circ - \frac{RT}{nF}\ln Q$ (Nernst equation)`},
						},
						{
							ID:            "HS-PS1.6b",
							Domain:        "Electrochemistry",
							Cluster:       "Quantitative electrochemistry and applications",
							Description:   "Apply Faraday's laws of electrolysis to calculate quantities of substances produced at electrodes. Analyze practical applications of electrochemistry including batteries, fuel cells, and corrosion prevention.",
							KeyVocabulary: []string{"Faraday's law", "electrolysis", "coulomb", "Faraday constant", "electroplating", "fuel cell", "corrosion", "cathodic protection"},
							KeyFormulas:   []string{`$q = nF$`, `$q = It$`, `$m = \frac{ItM}{nF}$`, `$F = 96485 \text{ C/mol}$`},
						},
					},
				},
				{
					Domain: "Thermodynamics",
					Standards: []Standard{
						{
							ID:            "HS-PS3.3",
							Domain:        "Thermodynamics",
							Cluster:       "Advanced thermodynamic calculations",
							Description:   "Design, build, and refine a device that works within given constraints to convert one form of energy into another form of energy. Apply thermodynamic principles including enthalpy, entropy, and Gibbs free energy to predict reaction spontaneity.",
							KeyVocabulary: []string{"enthalpy", "entropy", "Gibbs free energy", "standard conditions", "spontaneity", "thermodynamic favorability", "coupled reactions"},
							KeyFormulas:   []string{`$\Delta G^\circ = \Delta H^\circ - T\Delta S^\circ$`, `$\Delta G^\circ = -RT\ln K$`, `$\Delta S^\circ_{\text{rxn}} = \sum S^\circ(\text{products}) - \sum S^\circ(\text{reactants})$`},
						},
						{
							ID:            "HS-PS3.4a",
							Domain:        "Thermodynamics",
							Cluster:       "Entropy and the second law",
							Description:   "Plan and conduct an investigation to provide evidence that the transfer of thermal energy when two components of different temperature are combined within a closed system results in a more uniform energy distribution. Extend to quantitative entropy calculations and prediction of spontaneity from entropy changes.",
							KeyVocabulary: []string{"entropy", "second law of thermodynamics", "third law of thermodynamics", "standard molar entropy", "microstates", "Boltzmann equation", "irreversible process"},
							KeyFormulas:   []string{`$\Delta S = \frac{q_{\text{rev}}}{T}$`, `$S = k_B \ln W$`, `$\Delta S_{\text{universe}} = \Delta S_{\text{system}} + \Delta S_{\text{surroundings}} > 0$`, `$\Delta S_{\text{surr}} = -\frac{\Delta H_{\text{sys}}}{T}$`},
						},
					},
				},
			},
		},
		{
			Course: "AP Chemistry",
			Domains: []DomainGroup{
				{
					Domain: "Atomic Structure and Properties",
					Standards: []Standard{
						{
							ID:            "AP-CHEM.1",
							Domain:        "Atomic Structure and Properties",
							Cluster:       "Moles and molar mass",
							Description:   "Calculate quantities of a substance or its relative number of particles using dimensional analysis and the mole concept. Connect molar mass, Avogadro's number, and mass-to-mole conversions.",
							KeyVocabulary: []string{"mole", "Avogadro's number", "molar mass", "dimensional analysis", "empirical formula", "molecular formula", "percent composition"},
							KeyFormulas:   []string{`$n = \frac{m}{M}$`, `$N = nN_A$`, `$N_A = 6.022 \times 10^{23} \text{ mol}^{-1}$`, `$\text{\% composition} = \frac{\text{mass of element}}{\text{molar mass}} \times 100$`},
						},
						{
							ID:            "AP-CHEM.2",
							Domain:        "Atomic Structure and Properties",
							Cluster:       "Electron configuration and the periodic table",
							Description:   "Explain the relationship between the photoelectron spectrum of an atom or ion and its electron configuration and the interactions between the electrons and the nucleus. Use periodic trends to predict and explain properties.",
							KeyVocabulary: []string{"photoelectron spectroscopy", "ionization energy", "electron shielding", "effective nuclear charge", "Coulomb's law", "core electrons", "valence electrons"},
							KeyFormulas:   []string{`$E_n = -2.178 \times 10^{-18} \left(\frac{Z^2}{n^2}\right) \text{ J}$`, `$F = k\frac{q_1 q_2}{r^2}$`, `$E = h\nu = \frac{hc}{\lambda}$`},
						},
					},
				},
				{
					Domain: "Molecular and Ionic Bonding",
					Standards: []Standard{
						{
							ID:            "AP-CHEM.3",
							Domain:        "Molecular and Ionic Bonding",
							Cluster:       "Types of chemical bonds",
							Description:   "Represent the relationship between potential energy and distance between atoms in a bond using a graph, and use it to explain why atoms form bonds and determine bond energy and bond length. Analyze ionic, covalent, and metallic bonding models.",
							KeyVocabulary: []string{"bond energy", "bond length", "potential energy diagram", "lattice energy", "Born-Haber cycle", "metallic bonding", "electron sea model", "band theory"},
							KeyFormulas:   []string{`$\Delta H_{\text{rxn}} = \sum D(\text{bonds broken}) - \sum D(\text{bonds formed})$`, `$\text{lattice energy} \propto \frac{q^+ \times q^-}{r^+ + r^-}$`},
						},
						{
							ID:            "AP-CHEM.4",
							Domain:        "Molecular and Ionic Bonding",
							Cluster:       "Lewis structures and molecular geometry",
							Description:   "Represent a molecule with a Lewis diagram that accounts for resonance structures or with a model that accounts for the VSEPR theory to predict molecular geometry. Determine formal charges and use them to evaluate competing structures.",
							KeyVocabulary: []string{"Lewis structure", "resonance", "formal charge", "VSEPR theory", "electron domain geometry", "molecular geometry", "hybridization", "bond angle", "lone pair"},
							KeyFormulas:   []string{`$\text{formal charge} = V - L - \frac{B}{2}$`, `$\text{bond order} = \frac{\text{total bonds}}{\text{number of bonding positions}}$`},
						},
					},
				},
				{
					Domain: "Intermolecular Forces",
					Standards: []Standard{
						{
							ID:            "AP-CHEM.5",
							Domain:        "Intermolecular Forces",
							Cluster:       "Intermolecular forces and properties",
							Description:   "Explain the relationship between the chemical structures of molecules and the relative strength of their intermolecular forces when given two different pure substances and predict the macroscopic properties of each substance.",
							KeyVocabulary: []string{"London dispersion forces", "dipole-dipole forces", "hydrogen bonding", "ion-dipole forces", "polarizability", "surface tension", "viscosity", "capillary action"},
							KeyFormulas:   []string{`$\text{Clausius-Clapeyron: } \ln\frac{P_2}{P_1} = -\frac{\Delta H_{\text{vap}}}{R}\left(\frac{1}{T_2} - \frac{1}{T_1}\right)$`, `$P_{\text{solution}} = X_{\text{solvent}}P^\circ_{\text{solvent}}$`},
						},
						{
							ID:            "AP-CHEM.6",
							Domain:        "Intermolecular Forces",
							Cluster:       "Solids, liquids, and phase diagrams",
							Description:   "Represent the differences between solid, liquid, and gas phases using a particulate-level model. Interpret phase diagrams and predict phase behavior under different conditions of temperature and pressure.",
							KeyVocabulary: []string{"phase diagram", "triple point", "critical point", "crystalline solid", "amorphous solid", "unit cell", "ionic solid", "molecular solid", "network covalent solid"},
							KeyFormulas:   []string{`$\Delta T_b = iK_bm$`, `$\Delta T_f = iK_fm$`, `$\pi = iMRT$`},
						},
					},
				},
				{
					Domain: "Chemical Reactions",
					Standards: []Standard{
						{
							ID:            "AP-CHEM.7",
							Domain:        "Chemical Reactions",
							Cluster:       "Net ionic equations and reaction types",
							Description:   "Represent changes in matter with a balanced molecular, complete ionic, or net ionic equation. Identify reaction types including precipitation, acid-base, and redox reactions. Assign oxidation states and identify spectator ions.",
							KeyVocabulary: []string{"net ionic equation", "spectator ion", "precipitation reaction", "acid-base reaction", "oxidation state", "redox reaction", "driving force", "solubility rules"},
							KeyFormulas:   []string{`$\text{Oxidation: loss of electrons}$`, `$\text{Reduction: gain of electrons}$`, `$M_1V_1 = M_2V_2$`},
						},
						{
							ID:            "AP-CHEM.8",
							Domain:        "Chemical Reactions",
							Cluster:       "Stoichiometry and limiting reagents",
							Description:   "Explain the relationship between the macroscopic quantities of reactants and products in a balanced chemical equation, identifying the limiting reagent and calculating theoretical, actual, and percent yield.",
							KeyVocabulary: []string{"limiting reagent", "excess reagent", "theoretical yield", "percent yield", "stoichiometric coefficients", "mole ratio"},
							KeyFormulas:   []string{`$\text{\% yield} = \frac{\text{actual yield}}{\text{theoretical yield}} \times 100\%$`, `$PV = nRT$`, `$P_{\text{total}} = P_1 + P_2 + ... + P_n$ (Dalton's law)`},
						},
					},
				},
				{
					Domain: "Kinetics",
					Standards: []Standard{
						{
							ID:            "AP-CHEM.9",
							Domain:        "Kinetics",
							Cluster:       "Rate laws, mechanisms, and catalysis",
							Description:   "Determine the rate law for a reaction from experimental data. Relate rate laws to proposed mechanisms, identify rate-determining steps, and analyze the role of catalysts. Use integrated rate laws and the Arrhenius equation for quantitative kinetics analysis.",
							KeyVocabulary: []string{"rate law", "reaction order", "rate constant", "integrated rate law", "half-life", "Arrhenius equation", "activation energy", "reaction mechanism", "elementary step", "catalyst"},
							KeyFormulas:   []string{`$\text{rate} = k[A]^m[B]^n$`, `$\ln[A] = -kt + \ln[A]_0$ (first order)`, `$k = Ae^{-E_a/RT}$`, `$\ln\frac{k_2}{k_1} = \frac{E_a}{R}\left(\frac{1}{T_1} - \frac{1}{T_2}\right)$`},
						},
					},
				},
				{
					Domain: "Equilibrium",
					Standards: []Standard{
						{
							ID:            "AP-CHEM.10",
							Domain:        "Equilibrium",
							Cluster:       "Equilibrium constants and Le Chatelier's principle",
							Description:   "Represent a reversible reaction with equilibrium expressions and calculate equilibrium concentrations using Kc, Kp, and ICE tables. Explain the response of a system at equilibrium to a disturbance using Le Chatelier's principle and the reaction quotient Q.",
							KeyVocabulary: []string{"equilibrium constant", "reaction quotient", "ICE table", "Le Chatelier's principle", "Kp", "Kc", "Ksp", "common ion effect"},
							KeyFormulas:   []string{`$K_c = \frac{[C]^c[D]^d}{[A]^a[B]^b}$`, `$K_p = K_c(RT)^{\Delta n}$`, `$Q < K \Rightarrow \text{forward shift}$`, `$Q > K \Rightarrow \text{reverse shift}$`},
						},
					},
				},
				{
					Domain: "Acids and Bases",
					Standards: []Standard{
						{
							ID:            "AP-CHEM.11",
							Domain:        "Acids and Bases",
							Cluster:       "Acid-base equilibria and buffers",
							Description:   "Calculate the pH of solutions of strong and weak acids and bases, including polyprotic systems. Design and analyze buffer solutions using the Henderson-Hasselbalch equation. Interpret titration curves and identify equivalence points.",
							KeyVocabulary: []string{"Ka", "Kb", "Kw", "pH", "pOH", "buffer", "Henderson-Hasselbalch", "titration", "equivalence point", "polyprotic acid", "amphoteric", "Lewis acid", "Lewis base"},
							KeyFormulas:   []string{`$K_w = [H_3O^+][OH^-] = 1.0 \times 10^{-14}$`, `$pH = pK_a + \log\frac{[A^-]}{[HA]}$`, `$K_a \times K_b = K_w$`, `$pH = -\log[H_3O^+]$`},
						},
					},
				},
				{
					Domain: "Thermodynamics",
					Standards: []Standard{
						{
							ID:            "AP-CHEM.12",
							Domain:        "Thermodynamics",
							Cluster:       "Enthalpy, entropy, and Gibbs free energy",
							Description:   "Calculate enthalpy changes using Hess's law and standard enthalpies of formation. Predict the sign of entropy changes and calculate Gibbs free energy to determine thermodynamic favorability. Relate free energy to the equilibrium constant.",
							KeyVocabulary: []string{"enthalpy", "entropy", "Gibbs free energy", "Hess's law", "standard enthalpy of formation", "spontaneous", "nonspontaneous", "coupled reactions", "thermodynamic favorability"},
							KeyFormulas:   []string{`$\Delta H^\circ_{\text{rxn}} = \sum \Delta H^\circ_f(\text{products}) - \sum \Delta H^\circ_f(\text{reactants})$`, `$\Delta G^\circ = \Delta H^\circ - T\Delta S^\circ$`, `$\Delta G^\circ = -RT\ln K$`, `$\Delta G = \Delta G^\circ + RT\ln Q$`},
						},
					},
				},
				{
					Domain: "Electrochemistry",
					Standards: []Standard{
						{
							ID:            "AP-CHEM.13",
							Domain:        "Electrochemistry",
							Cluster:       "Galvanic and electrolytic cells",
							Description:   "Analyze galvanic and electrolytic cells including cell diagrams, standard cell potentials, and the Nernst equation. Relate cell potential to free energy and the equilibrium constant. Apply Faraday's laws to electrolysis calculations.",
							KeyVocabulary: []string{"galvanic cell", "electrolytic cell", "standard reduction potential", "Nernst equation", "cell potential", "Faraday's constant", "electrolysis", "salt bridge", "half-reaction"},
							KeyFormulas:   []string{`$E^\circ_{\text{cell}} = E^\circ_{\text{cathode}} - E^\circ_{\text{anode}}$`, `$\Delta G^\circ = -nFE^\circ_{\text{cell}}$`, `$E = E^\circ - \frac{RT}{nF}\ln Q$`, `$\ln K = \frac{nFE^\circ}{RT}$`},
						},
					},
				},
				{
					Domain: "Applications of Chemistry",
					Standards: []Standard{
						{
							ID:            "AP-CHEM.14",
							Domain:        "Applications of Chemistry",
							Cluster:       "Spectroscopy and analytical methods",
							Description:   "Explain the interaction between electromagnetic radiation and matter, including absorption and emission spectra. Use Beer's law for quantitative spectroscopic analysis. Relate molecular structure to spectroscopic properties.",
							KeyVocabulary: []string{"absorption spectrum", "emission spectrum", "Beer's law", "wavelength", "frequency", "photon energy", "spectrophotometry", "transmittance", "absorbance"},
							KeyFormulas:   []string{`$E = h\nu = \frac{hc}{\lambda}$`, `$c = \lambda\nu$`, `$A = \varepsilon bc$ (Beer's law)`, `$A = -\log T$`},
						},
					},
				},
			},
		},
	}
}
