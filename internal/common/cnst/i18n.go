package cnst

const (
	LangEN      = "en"
	LangZH      = "zh"
	LangDefault = LangEN

	// XLang overrides Accept-Language when present
	XLang = "X-Lang"

	CtxKeyLang      = "lang"
	CtxKeyRequestID = "request_id"

	HeaderRequestID = "X-Request-ID"
)
