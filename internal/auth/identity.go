package auth

// Capability - закрытый набор уровней доступа вызывающей стороны.
// Ровно два уровня: аноним и аутентифицированный клиент. Админского
// уровня в схеме нет; добавлять его - значит добавить третье значение
// и свои строки в policy-таблицу, а не угадывать предикаты.
type Capability int

const (
	CapabilityAnonymous Capability = iota
	CapabilityAuthenticated
)

func (c Capability) String() string {
	switch c {
	case CapabilityAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Identity - личность вызывающего. ClientID заполнен только для
// аутентифицированных вызовов и по форме равен первичному ключу Client.
type Identity struct {
	Capability Capability
	ClientID   string
}

// Anonymous возвращает личность неаутентифицированного вызова.
func Anonymous() Identity {
	return Identity{Capability: CapabilityAnonymous}
}

// Authenticated возвращает личность с подтвержденным client id.
func Authenticated(clientID string) Identity {
	return Identity{Capability: CapabilityAuthenticated, ClientID: clientID}
}

// IsAuthenticated проверяет, что вызов несет identity claim.
func (i Identity) IsAuthenticated() bool {
	return i.Capability == CapabilityAuthenticated && i.ClientID != ""
}

// Owns проверяет, что строка с данным client id принадлежит вызывающему.
func (i Identity) Owns(clientID string) bool {
	return i.IsAuthenticated() && i.ClientID == clientID
}
