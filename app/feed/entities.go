package feed

// defaultEntities maps the named HTML/XML character entities found in the
// wild (legacy feeds are rarely strict XML) to their literal text: the core
// XML set, ISO-8859-1, common typographic marks, mathematical symbols, and
// Greek letters.
func defaultEntities() map[string]string {
	return map[string]string{
		"amp":  "&",
		"lt":   "<",
		"gt":   ">",
		"nbsp": " ",

		// ISO-8859-1
		"iexcl": "¡", "cent": "¢", "pound": "£",
		"curren": "¤", "yen": "¥", "brvbar": "¦",
		"sect": "§", "uml": "¨", "copy": "©",
		"ordf": "ª", "laquo": "«", "not": "¬",
		"shy": "­", "reg": "®", "macr": "¯",
		"deg": "°", "plusmn": "±", "sup2": "²",
		"sup3": "³", "acute": "´", "micro": "µ",
		"para": "¶", "cedil": "¸", "sup1": "¹",
		"ordm": "º", "raquo": "»", "frac14": "¼",
		"frac12": "½", "frac34": "¾", "iquest": "¿",
		"times": "×", "divide": "÷",

		// mathematical
		"forall": "∀", "part": "∂", "exist": "∃",
		"empty": "∅", "nabla": "∇", "isin": "∈",
		"notin": "∉", "ni": "∋", "prod": "∏",
		"sum": "∑", "minus": "−", "lowast": "∗",
		"radic": "√", "prop": "∝", "infin": "∞",
		"ang": "∠", "and": "∧", "or": "∨",
		"cap": "∩", "cup": "∪", "int": "∫",
		"there4": "∴", "sim": "∼", "cong": "≅",
		"asymp": "≈", "ne": "≠", "equiv": "≡",
		"le": "≤", "ge": "≥", "sub": "⊂",
		"sup": "⊃", "nsub": "⊄", "sube": "⊆",
		"supe": "⊇", "oplus": "⊕", "otimes": "⊗",
		"perp": "⊥", "sdot": "⋅",

		// Greek
		"Alpha": "Α", "Beta": "Β", "Gamma": "Γ",
		"Delta": "Δ", "Epsilon": "Ε", "Zeta": "Ζ",
		"Eta": "Η", "Theta": "Θ", "Iota": "Ι",
		"Kappa": "Κ", "Lambda": "Λ", "Mu": "Μ",
		"Nu": "Ν", "Xi": "Ξ", "Omicron": "Ο",
		"Pi": "Π", "Rho": "Ρ", "Sigma": "Σ",
		"Tau": "Τ", "Upsilon": "Υ", "Phi": "Φ",
		"Chi": "Χ", "Psi": "Ψ", "Omega": "Ω",
		"alpha": "α", "beta": "β", "gamma": "γ",
		"delta": "δ", "epsilon": "ε", "zeta": "ζ",
		"eta": "η", "theta": "θ", "iota": "ι",
		"kappa": "κ", "lambda": "λ", "mu": "μ",
		"nu": "ν", "xi": "ξ", "omicron": "ο",
		"pi": "π", "rho": "ρ", "sigmaf": "ς",
		"sigma": "σ", "tau": "τ", "upsilon": "υ",
		"phi": "φ", "chi": "χ", "psi": "ψ",
		"omega": "ω", "thetasym": "ϑ", "upsih": "ϒ",
		"piv": "ϖ",

		// typographic
		"OElig": "Œ", "oelig": "œ", "Scaron": "Š",
		"scaron": "š", "Yuml": "Ÿ", "fnof": "ƒ",
		"circ": "ˆ", "tilde": "˜",
		"ensp": " ", "emsp": " ", "thinsp": " ",
		"zwnj": "‌", "zwj": "‍", "lrm": "‎",
		"rlm": "‏", "ndash": "–", "mdash": "—",
		"lsquo": "‘", "rsquo": "’", "sbquo": "‚",
		"ldquo": "“", "rdquo": "”", "bdquo": "„",
		"dagger": "†", "Dagger": "‡", "bull": "•",
		"hellip": "…", "permil": "‰", "prime": "′",
		"Prime": "″", "lsaquo": "‹", "rsaquo": "›",
		"oline": "‾", "euro": "€", "trade": "™",
		"larr": "←", "uarr": "↑", "rarr": "→",
		"darr": "↓", "harr": "↔", "crarr": "↵",
		"lceil": "⌈", "rceil": "⌉", "lfloor": "⌊",
		"rfloor": "⌋", "loz": "◊", "spades": "♠",
		"clubs": "♣", "hearts": "♥", "diams": "♦",
	}
}
