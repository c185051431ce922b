// Package environment propagates the application environment (development,
// staging or production) through configuration, request contexts and logs.
//
// Parse turns a configured APP_ENV value into an Environment. Middleware
// stores it on every request context, FromContext and the Is* predicates read
// it back, and LoggerExtractor exposes it to the logger package as an "env"
// attribute.
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	if err != nil {
//		return err
//	}
//	handler = environment.Middleware(env)(handler)
package environment
