package bio

var aminoAcidNames = map[byte]string{
	'A': "Alanine",
	'R': "Arginine",
	'N': "Asparagine",
	'D': "Aspartic acid",
	'C': "Cysteine",
	'Q': "Glutamine",
	'E': "Glutamic acid",
	'G': "Glycine",
	'H': "Histidine",
	'I': "Isoleucine",
	'L': "Leucine",
	'K': "Lysine",
	'M': "Methionine",
	'F': "Phenylalanine",
	'P': "Proline",
	'S': "Serine",
	'T': "Threonine",
	'W': "Tryptophan",
	'Y': "Tyrosine",
	'V': "Valine",

	StopCodon:    "Stop",
	Undetermined: "Undetermined",
}

// AminoAcidName returns the full name of an amino acid one-letter
// symbol. Unknown symbols are reported as undetermined.
func AminoAcidName(aa byte) string {
	if name, ok := aminoAcidNames[aa]; ok {
		return name
	}
	return aminoAcidNames[Undetermined]
}
