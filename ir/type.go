package ir

type Type int

const (
	SpaceType Type = iota
	CommentType
	OptionType
	SectionType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		SpaceType:   "Space",
		CommentType: "Comment",
		OptionType:  "Option",
		SectionType: "Section",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func Types() []Type {
	return []Type{
		SpaceType,
		CommentType,
		OptionType,
		SectionType,
	}
}
