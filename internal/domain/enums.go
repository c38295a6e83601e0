package domain

// TextType categorizes a text record by the kind of document it is.
type TextType string

// Known text types.
const (
	TextTypeLegal     TextType = "legal"
	TextTypeBusiness  TextType = "business"
	TextTypeAcademic  TextType = "academic"
	TextTypeCreative  TextType = "creative"
	TextTypeTechnical TextType = "technical"
)

// Valid reports whether t is one of the known text types.
func (t TextType) Valid() bool {
	switch t {
	case TextTypeLegal, TextTypeBusiness, TextTypeAcademic, TextTypeCreative, TextTypeTechnical:
		return true
	}
	return false
}

// TextTypeValues returns all known text types in declaration order.
func TextTypeValues() []TextType {
	return []TextType{
		TextTypeLegal,
		TextTypeBusiness,
		TextTypeAcademic,
		TextTypeCreative,
		TextTypeTechnical,
	}
}

// Style describes the writing register requested for a text.
type Style string

// Known writing styles.
const (
	StyleFormal       Style = "formal"
	StyleCasual       Style = "casual"
	StyleProfessional Style = "professional"
	StylePersuasive   Style = "persuasive"
)

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool {
	switch s {
	case StyleFormal, StyleCasual, StyleProfessional, StylePersuasive:
		return true
	}
	return false
}

// Length is the requested size of a generated text.
type Length string

// Known length hints.
const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Valid reports whether l is one of the known length hints.
func (l Length) Valid() bool {
	switch l {
	case LengthShort, LengthMedium, LengthLong:
		return true
	}
	return false
}

// ImprovementType describes which aspect of a text an improvement pass
// should focus on.
type ImprovementType string

// Known improvement types.
const (
	ImprovementGrammar       ImprovementType = "grammar"
	ImprovementStyle         ImprovementType = "style"
	ImprovementClarity       ImprovementType = "clarity"
	ImprovementProfessional  ImprovementType = "professional"
	ImprovementComprehensive ImprovementType = "comprehensive"
)

// Valid reports whether i is one of the known improvement types.
func (i ImprovementType) Valid() bool {
	switch i {
	case ImprovementGrammar, ImprovementStyle, ImprovementClarity,
		ImprovementProfessional, ImprovementComprehensive:
		return true
	}
	return false
}

// ImprovementTypeValues returns all known improvement types in
// declaration order.
func ImprovementTypeValues() []ImprovementType {
	return []ImprovementType{
		ImprovementGrammar,
		ImprovementStyle,
		ImprovementClarity,
		ImprovementProfessional,
		ImprovementComprehensive,
	}
}
