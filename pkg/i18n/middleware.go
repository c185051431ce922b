package i18n

import "net/http"

// Middleware negotiates the request language from Accept-Language against
// the translator's languages and stores it with SetLocale. The negotiated
// language is echoed in the Content-Language response header.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ParseAcceptLanguage(r.Header.Get("Accept-Language"), t.SupportedLanguages(), t.DefaultLanguage())
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
