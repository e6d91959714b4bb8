package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/kollel-app/kollel/api"
	"github.com/kollel-app/kollel/color"
	"github.com/kollel-app/kollel/config"
	"github.com/kollel-app/kollel/icon"
	"github.com/kollel-app/kollel/key"
	"github.com/kollel-app/kollel/log"
	"github.com/kollel-app/kollel/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const requestIDHeader = "X-Request-Id"

func init() {
	rootCmd.AddCommand(requestCmd)

	requestCmd.Flags().StringP("method", "X", http.MethodGet, "HTTP method")
	requestCmd.Flags().StringArrayP("header", "H", nil, "Request header as name:value, repeatable")
	requestCmd.Flags().StringP("data", "d", "", "Request body, sent as json when it parses as json")
	requestCmd.Flags().StringArrayP("query", "q", nil, "Query parameter as name=value, repeatable")
	requestCmd.Flags().String("base-url", "", "Base URL for this request only")
	requestCmd.Flags().StringP("type", "t", "", "Response type: json, text or blob (detected by default)")
	requestCmd.Flags().Bool("raw", false, "Print a text body as is instead of json")
	requestCmd.Flags().Bool("request-id", false, "Tag the request with a random X-Request-Id header")

	lo.Must0(requestCmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(api.ResponseJSON), string(api.ResponseText), string(api.ResponseBlob)}, cobra.ShellCompDirectiveNoFileComp
	}))

	requestCmd.SetOut(os.Stdout)
}

// parseHeaders reads name:value pairs.
func parseHeaders(pairs []string) (http.Header, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	header := http.Header{}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q, expected name:value", pair)
		}
		header.Add(name, strings.TrimSpace(value))
	}
	return header, nil
}

// parseQuery reads name=value pairs.
func parseQuery(pairs []string) (url.Values, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	query := url.Values{}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid query parameter %q, expected name=value", pair)
		}
		query.Add(name, value)
	}
	return query, nil
}

// parseResponseType validates the --type flag.
func parseResponseType(s string) (api.ResponseType, error) {
	switch t := api.ResponseType(strings.ToLower(s)); t {
	case api.ResponseAuto, api.ResponseJSON, api.ResponseText, api.ResponseBlob:
		return t, nil
	default:
		return "", fmt.Errorf("unknown response type %q", s)
	}
}

// withRequestID adds a random X-Request-Id unless headers already carry one.
func withRequestID(headers http.Header) http.Header {
	if headers == nil {
		headers = http.Header{}
	}
	if headers.Get(requestIDHeader) == "" {
		headers.Set(requestIDHeader, uuid.NewString())
	}
	return headers
}

// requestBody sends valid json as json and anything else as text.
func requestBody(data string) any {
	if data == "" {
		return nil
	}
	if json.Valid([]byte(data)) {
		return json.RawMessage(data)
	}
	return data
}

// requestOptions builds the request options from the command flags.
func requestOptions(cmd *cobra.Command) (api.Options, error) {
	headers, err := parseHeaders(lo.Must(cmd.Flags().GetStringArray("header")))
	if err != nil {
		return api.Options{}, err
	}

	query, err := parseQuery(lo.Must(cmd.Flags().GetStringArray("query")))
	if err != nil {
		return api.Options{}, err
	}

	responseType, err := parseResponseType(lo.Must(cmd.Flags().GetString("type")))
	if err != nil {
		return api.Options{}, err
	}

	if lo.Must(cmd.Flags().GetBool("request-id")) {
		headers = withRequestID(headers)
		log.Debugf("request id %s", headers.Get(requestIDHeader))
	}

	return api.Options{
		Method:       strings.ToUpper(lo.Must(cmd.Flags().GetString("method"))),
		Headers:      headers,
		Body:         requestBody(lo.Must(cmd.Flags().GetString("data"))),
		Query:        query,
		BaseURL:      lo.Must(cmd.Flags().GetString("base-url")),
		ResponseType: responseType,
	}, nil
}

// printResult writes the value of result to w.
func printResult(w io.Writer, result api.Result, raw bool) error {
	if raw && result.OK() {
		switch body := result.Body.(type) {
		case string:
			_, err := fmt.Fprintln(w, body)
			return err
		case []byte:
			_, err := w.Write(body)
			return err
		}
	}

	return encodeJSON(w, result)
}

// describeResult summarizes a non-ok result for stderr.
func describeResult(result api.Result) string {
	switch {
	case result.Failure != nil:
		return fmt.Sprintf("%d %s", result.Failure.Status, result.Failure.Message)
	case result.Response != nil:
		return fmt.Sprintf("%d %s", result.Response.Status, result.Response.StatusText)
	default:
		return ""
	}
}

var requestCmd = &cobra.Command{
	Use:   "request <url>",
	Short: "Send one request to the Kollel backend",
	Long: `Send one request to the Kollel backend and print the outcome as json.

Paths are resolved against api.url. Failures are printed as data
and do not change the exit code.`,
	Example: `  kollel request /api/students
  kollel request -X POST -d '{"name":"Levi"}' /api/students
  kollel request -q page=2 -H 'Authorization: Bearer x' students`,
	Args: cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		handleErr(config.Validate())
	},
	Run: func(cmd *cobra.Command, args []string) {
		policy, err := api.ParseHeaderPolicy(viper.GetString(key.APIHeaderPolicy))
		handleErr(err)

		options, err := requestOptions(cmd)
		handleErr(err)

		request := api.Use(viper.GetString(key.APIURL), api.WithHeaderPolicy(policy))
		result := request(cmd.Context(), args[0], options)

		if !result.OK() {
			cmd.PrintErrf("%s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), describeResult(result))
		}

		handleErr(printResult(cmd.OutOrStdout(), result, lo.Must(cmd.Flags().GetBool("raw"))))
	},
}
