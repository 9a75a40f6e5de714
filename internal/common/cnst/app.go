package cnst

const (
	AppName     = "luhambo"
	CommandName = "apiserver"
)
