package settings

const component = "settings"

// Failure codes carried by settings errors. They start above the engine's
// range so errors.Is never confuses the two.
const (
	CodeLoad = iota + 100
	CodeParse
	CodeInvalid
)
