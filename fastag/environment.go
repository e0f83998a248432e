package fastag

type Environment int

const (
	UAT Environment = iota
	Production
)

func (e Environment) BaseURL() string {
	switch e {
	case Production:
		return "https://pmtgateway.bajajfinserv.in"
	case UAT:
		return "https://pmtgatewayuat.bajajfinserv.in"
	}
	panic("invalid environment")
}

// ParseEnvironment maps a configuration string to an Environment.
// Anything other than "production" selects UAT.
func ParseEnvironment(s string) Environment {
	if s == "production" || s == "prod" {
		return Production
	}
	return UAT
}
