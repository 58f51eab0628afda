package lib

type Token struct {
	Value string //@final
}

func NewToken(v string) *Token {
	t := new(Token)
	t.Value = v

	return t
}
