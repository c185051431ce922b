package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/attrvalid/pkg/httpapi"
	"github.com/dmitrymomot/attrvalid/pkg/httpserver"
	"github.com/dmitrymomot/attrvalid/pkg/i18n"
	"github.com/dmitrymomot/attrvalid/pkg/schema"
)

func serveCmd(a *app) *cobra.Command {
	var modelsPath, translationsPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation HTTP API",
		Long: `Serve one validator per model from a models YAML file.

The listen address and timeouts come from HTTP_ADDR, HTTP_READ_TIMEOUT,
HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT and HTTP_SHUTDOWN_TIMEOUT.

With --translations, violation messages are localized to the language
negotiated from the Accept-Language request header.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			models, err := schema.LoadModelsFile(modelsPath)
			if err != nil {
				return err
			}
			reg, err := httpapi.NewRegistry(models, a.validationOptions()...)
			if err != nil {
				return err
			}

			opts := []httpapi.Option{
				httpapi.WithLogger(a.log),
				httpapi.WithEnvironment(a.env),
				httpapi.WithMetrics(httpapi.NewMetrics()),
			}
			if translationsPath != "" {
				tr, err := i18n.NewTranslator(cmd.Context(), &i18n.FileAdapter{Path: translationsPath},
					i18n.WithLogger(a.log))
				if err != nil {
					return err
				}
				opts = append(opts, httpapi.WithTranslator(tr))
			}
			router := httpapi.NewRouter(reg, opts...)

			a.log.InfoContext(cmd.Context(), "models loaded", "models", reg.Names())
			srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(a.log))
			return srv.Run(cmd.Context(), router)
		},
	}

	cmd.Flags().StringVarP(&modelsPath, "models", "m", "", "Models file (YAML)")
	cmd.Flags().StringVarP(&translationsPath, "translations", "t", "", "Message catalog (YAML)")
	_ = cmd.MarkFlagRequired("models")

	return cmd
}
