/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/ademuri/catalog-stats/internal/analysis"
	"github.com/ademuri/catalog-stats/internal/catalog"
	"github.com/ademuri/catalog-stats/internal/config"
)

type SendEmailConfig struct {
	From        string
	To          []string
	Types       []string
	Params      []map[string]string
	DryRun      bool
	SendgridKey string
	DateArgs    []string
}

type sendError struct {
	code int
	body string
}

func (e *sendError) Error() string {
	return fmt.Sprintf("sendgrid returned HTTP %d: %s", e.code, e.body)
}

var emailCmd = &cobra.Command{
	Use:   "email <address...> [date] [date]",
	Short: "Sends an email report",
	Long: `Emails the chosen analyses to each address.
  --analyses is one or more of: genres, top-genres, rank, peaks, leaders, trend,
  explicit, genre-explicit, yearly-explicit, summary.
  Optional date arguments can be provided at the end (e.g. '1990' or '1990 2000')
  to restrict tracks by release date.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString(config.KeyFrom) == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		addresses, dateArgs := splitDateArgs(args)
		if len(addresses) == 0 {
			fmt.Println("Error: No addresses specified")
			os.Exit(1)
		}

		analysisTypes, _ := cmd.Flags().GetStringSlice("analyses")
		params, _ := cmd.Flags().GetStringArray("params")
		if len(params) > 0 && len(params) != len(analysisTypes) {
			fmt.Printf("Error: Number of --params flags (%d) must match number of analyses (%d), or be 0.\n", len(params), len(analysisTypes))
			os.Exit(1)
		}

		structuredParams := make([]map[string]string, len(analysisTypes))
		for i, v := range params {
			structuredParams[i] = parseParams(v)
		}

		err := sendEmail(SendEmailConfig{
			From:        viper.GetString(config.KeyFrom),
			To:          addresses,
			Types:       analysisTypes,
			Params:      structuredParams,
			DryRun:      viper.GetBool("dryRun"),
			SendgridKey: viper.GetString(config.KeySendgridKey),
			DateArgs:    dateArgs,
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	var dryRun bool
	emailCmd.Flags().BoolVarP(&dryRun, "dry_run", "n", false, "When true, just print instead of emailing")
	viper.BindPFlag("dryRun", emailCmd.Flags().Lookup("dry_run"))

	var from string
	emailCmd.Flags().StringVar(&from, config.KeyFrom, "", "From email address")
	viper.BindPFlag(config.KeyFrom, emailCmd.Flags().Lookup(config.KeyFrom))

	var sendgridKey string
	emailCmd.Flags().StringVar(&sendgridKey, config.KeySendgridKey, "", "SendGrid API key")
	viper.BindPFlag(config.KeySendgridKey, emailCmd.Flags().Lookup(config.KeySendgridKey))

	emailCmd.Flags().StringSlice("analyses", []string{"top-genres", "rank", "peaks"}, "Analyses to include")
	emailCmd.Flags().StringArray("params", nil, "Parameters for analyses, matched by index (e.g. --params 'n=20,min=3')")
}

// splitDateArgs takes up to two trailing datestrings off args.
func splitDateArgs(args []string) (rest []string, dateArgs []string) {
	rest = args
	for i := 0; i < 2 && len(rest) > 0; i++ {
		last := rest[len(rest)-1]
		if _, err := parseSingleDatestring(last); err != nil {
			break
		}
		dateArgs = append([]string{last}, dateArgs...)
		rest = rest[:len(rest)-1]
	}
	return
}

func parseParams(v string) map[string]string {
	pMap := make(map[string]string)
	if v == "" {
		return pMap
	}
	for _, pair := range strings.Split(v, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 {
			pMap[kv[0]] = kv[1]
		}
	}
	return pMap
}

func getActions(config SendEmailConfig) ([]Analyser, error) {
	if len(config.Types) == 0 {
		return nil, fmt.Errorf("No analysis types specified")
	}

	actions := make([]Analyser, 0, len(config.Types))
	for i, actionName := range config.Types {
		action, err := getActionFromName(actionName)
		if err != nil {
			return nil, err
		}

		if i < len(config.Params) && len(config.Params[i]) > 0 {
			configurable, ok := action.(Configurable)
			if !ok {
				return nil, fmt.Errorf("%s does not take parameters", actionName)
			}
			if err := configurable.Configure(config.Params[i]); err != nil {
				return nil, fmt.Errorf("configuring %s (index %d): %w", actionName, i, err)
			}
		}

		actions = append(actions, action)
	}
	return actions, nil
}

func sendEmail(emailConfig SendEmailConfig) error {
	actions, err := getActions(emailConfig)
	if err != nil {
		return err
	}

	config, err := loadConfig()
	if err != nil {
		return err
	}
	tracks, err := loadTracks(config)
	if err != nil {
		return err
	}
	tracks, err = filterByDateArgs(tracks, emailConfig.DateArgs)
	if err != nil {
		return err
	}

	subject, plain, body, err := generateEmailContent(emailConfig, actions, tracks, config.Analysis)
	if err != nil {
		return err
	}

	if emailConfig.DryRun {
		fmt.Printf("Would have sent email to %s: \nsubject: %s\n%s\n", strings.Join(emailConfig.To, ", "), subject, body)
		return nil
	}

	if emailConfig.SendgridKey == "" {
		return fmt.Errorf("sendgrid_api_key must be set in order to send emails")
	}

	client := sendgrid.NewSendClient(emailConfig.SendgridKey)
	from := mail.NewEmail("catalog-stats", emailConfig.From)
	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)
	ctx := context.Background()
	for _, address := range emailConfig.To {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		message := mail.NewSingleEmail(from, subject, mail.NewEmail(address, address), plain, body)
		err := retry.Do(
			func() error {
				resp, err := client.Send(message)
				if err != nil {
					return err
				}
				if resp.StatusCode >= 300 {
					return &sendError{code: resp.StatusCode, body: resp.Body}
				}
				return nil
			},
			retry.Context(ctx),
			retry.Attempts(3),
			retry.LastErrorOnly(true),
			retry.RetryIf(func(err error) bool {
				var se *sendError
				if errors.As(err, &se) {
					return se.code/100 == 5 || se.code == 429
				}
				return true
			}),
			retry.OnRetry(func(n uint, err error) {
				log.Warn().Err(err).Str("to", address).Uint("attempt", n+1).Msg("Sending email failed, retrying")
			}),
		)
		if err != nil {
			return fmt.Errorf("sendEmail to %s: %w", address, err)
		}
		fmt.Printf("Sent report to %s\n", address)
	}

	return nil
}

func generateEmailContent(config SendEmailConfig, actions []Analyser, tracks []catalog.Track, analysisConfig analysis.Config) (subject string, plain string, body string, err error) {
	var out, text strings.Builder
	out.WriteString(`
<html>
  <head>
<style>
td {
  padding: 0.1em 0.2em;
}
table, th, td {
  border: 1px solid black;
  border-collapse: collapse;
}
</style>
  </head>
  <body>
`)

	period := "all release dates"
	if len(config.DateArgs) > 0 {
		start, end, perr := parseDateRangeFromArgs(config.DateArgs)
		if perr != nil {
			err = perr
			return
		}
		period = fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	for _, action := range actions {
		a, aerr := action.GetResults(tracks, analysisConfig)
		if aerr != nil {
			err = fmt.Errorf("getting results for %s: %w", action.GetName(), aerr)
			return
		}

		fmt.Fprintf(&out, "\t\t<div>\n<h2>%s, %s:</h2>\n", html.EscapeString(action.GetName()), period)
		fmt.Fprintf(&text, "%s, %s:\n", action.GetName(), period)
		if a.empty() {
			out.WriteString("<div>No results.</div>\n")
		} else {
			out.WriteString("\t\t\t<table>\n\t\t\t\t<thead>\n\t\t\t\t\t<tr>\n")
			for _, header := range a.results[0] {
				fmt.Fprintf(&out, "<th>%s</th>", html.EscapeString(header))
			}
			out.WriteString("\t\t\t\t</tr>\n\t\t\t</thead>\n\t\t\t<tbody>\n")
			for _, row := range a.results[1:] {
				out.WriteString("<tr>\n")
				for _, column := range row {
					fmt.Fprintf(&out, "<td>%s</td>\n", html.EscapeString(column))
				}
				out.WriteString("</tr>\n")
			}
			out.WriteString("\t\t\t</tbody>\n\t\t</table>\n")
		}
		fmt.Fprintf(&out, "<div>%s</div>\n\t\t</div>\n", html.EscapeString(a.summary))
		text.WriteString(a.String())
		text.WriteString("\n")
	}
	out.WriteString("  </body>\n</html>\n")

	subject = fmt.Sprintf("Catalog report for %s", period)
	return subject, text.String(), out.String(), nil
}
