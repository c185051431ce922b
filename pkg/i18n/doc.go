// Package i18n translates violation messages.
//
// A Translator holds a catalog keyed by language, loaded through a
// TranslationAdapter (MapAdapter, or FileAdapter for YAML files). Keys are
// dot-separated paths into nested maps and messages use %{name}
// placeholders:
//
//	es:
//	  validation:
//	    email: "%{field} debe ser un correo válido"
//
//	tr, err := i18n.NewTranslator(ctx, &i18n.FileAdapter{Path: "locales.yaml"})
//	msg := tr.T("es", "validation.email", "field", "email")
//
// Middleware negotiates the request language from Accept-Language with
// golang.org/x/text/language and stores it on the context (GetLocale).
package i18n
