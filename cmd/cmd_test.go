package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/kollel-app/kollel/api"
	"github.com/kollel-app/kollel/config"
	"github.com/kollel-app/kollel/key"
	"github.com/kollel-app/kollel/ui"
	"github.com/kollel-app/kollel/variant"
	"github.com/kollel-app/kollel/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
)

func TestParseHeaders(t *testing.T) {
	Convey("Parsing header flags", t, func() {
		Convey("No flags mean no headers", func() {
			h, err := parseHeaders(nil)
			So(err, ShouldBeNil)
			So(h, ShouldBeNil)
		})

		Convey("Pairs are trimmed and canonical", func() {
			h, err := parseHeaders([]string{"authorization: Bearer x", "X-Trace:1", "x-trace: 2"})
			So(err, ShouldBeNil)
			So(h.Get("Authorization"), ShouldEqual, "Bearer x")
			So(h.Values("X-Trace"), ShouldResemble, []string{"1", "2"})
		})

		Convey("A value may contain colons", func() {
			h, err := parseHeaders([]string{"Referer: https://kollelsys.com:443/"})
			So(err, ShouldBeNil)
			So(h.Get("Referer"), ShouldEqual, "https://kollelsys.com:443/")
		})

		Convey("A pair without a name is rejected", func() {
			_, err := parseHeaders([]string{"novalue"})
			So(err, ShouldNotBeNil)
			_, err = parseHeaders([]string{": x"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseQuery(t *testing.T) {
	Convey("Parsing query flags", t, func() {
		q, err := parseQuery([]string{"page=2", "tag=a", "tag=b", "empty="})
		So(err, ShouldBeNil)
		So(q, ShouldResemble, url.Values{"page": {"2"}, "tag": {"a", "b"}, "empty": {""}})

		_, err = parseQuery([]string{"page"})
		So(err, ShouldNotBeNil)
	})
}

func TestParseResponseType(t *testing.T) {
	Convey("Parsing the response type", t, func() {
		rt, err := parseResponseType("")
		So(err, ShouldBeNil)
		So(rt, ShouldEqual, api.ResponseAuto)

		rt, err = parseResponseType("TEXT")
		So(err, ShouldBeNil)
		So(rt, ShouldEqual, api.ResponseText)

		_, err = parseResponseType("xml")
		So(err, ShouldNotBeNil)
	})
}

func TestRequestBody(t *testing.T) {
	Convey("The request body", t, func() {
		So(requestBody(""), ShouldBeNil)
		So(requestBody(`{"name":"Levi"}`), ShouldResemble, json.RawMessage(`{"name":"Levi"}`))
		So(requestBody("name=Levi"), ShouldEqual, "name=Levi")
	})
}

func TestPrintResult(t *testing.T) {
	Convey("Printing a result", t, func() {
		var buf bytes.Buffer

		Convey("A failure is printed as the normalized record", func() {
			result := api.Normalize(&api.RequestError{Err: http.ErrHandlerTimeout})
			So(printResult(&buf, result, true), ShouldBeNil)
			So(buf.String(), ShouldEqual, "{\n  \"success\": false,\n  \"message\": \"An unexpected error occurred.\",\n  \"status\": 500\n}\n")
			So(describeResult(result), ShouldEqual, "500 An unexpected error occurred.")
		})

		Convey("A text body is printed as is in raw mode", func() {
			So(printResult(&buf, api.Result{Body: "hello"}, true), ShouldBeNil)
			So(buf.String(), ShouldEqual, "hello\n")
		})

		Convey("A text body is quoted otherwise", func() {
			So(printResult(&buf, api.Result{Body: "hello"}, false), ShouldBeNil)
			So(buf.String(), ShouldEqual, "\"hello\"\n")
		})

		Convey("An error response is printed verbatim", func() {
			result := api.Result{Response: &api.Response{Status: 404, StatusText: "Not Found", Data: map[string]any{"message": "missing"}}}
			So(printResult(&buf, result, true), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, `"status": 404`)
			So(buf.String(), ShouldContainSubstring, `"message": "missing"`)
			So(describeResult(result), ShouldEqual, "404 Not Found")
		})
	})
}

func TestSelectionFromFlags(t *testing.T) {
	Convey("Given a command with the ui classes flags", t, func() {
		cmd := &cobra.Command{}
		cmd.Flags().AddFlagSet(uiClassesCmd.Flags())
		So(cmd.ParseFlags([]string{"--color", "neutral", "--square", "--leading=false"}), ShouldBeNil)

		sel := selectionFromFlags(cmd)

		Convey("Only the changed flags are selected", func() {
			So(sel, ShouldResemble, variant.Selection{
				ui.AxisColor:   "neutral",
				ui.AxisSquare:  "true",
				ui.AxisLeading: "false",
			})
			So(ui.Button.Check(sel), ShouldBeNil)
		})

		Convey("Printing lists every slot", func() {
			var buf bytes.Buffer
			printClasses(&buf, ui.Button, sel, ui.Button.Resolve(sel))
			So(buf.String(), ShouldContainSubstring, "trailingIcon:")
			So(buf.String(), ShouldContainSubstring, "bg-inverted")
			So(buf.String(), ShouldContainSubstring, "2 compound rules")
		})
	})
}

func TestEnvNames(t *testing.T) {
	Convey("The env listing", t, func() {
		names := envNames()
		apiURL := config.Default[key.APIURL]

		So(names, ShouldContain, where.EnvConfigPath)
		So(names, ShouldContain, apiURL.Env())
		So(names, ShouldContain, "API_URL")
		So(names, ShouldContain, "KOLLEL_LOGS_LEVEL")
	})
}

func TestClosestKey(t *testing.T) {
	Convey("Misspelled keys are matched", t, func() {
		So(closestKey("api.ulr"), ShouldEqual, key.APIURL)
		So(closestKey("logs.levle"), ShouldEqual, key.LogsLevel)
	})
}

func TestPickPrompts(t *testing.T) {
	Convey("Given the pick prompts of the button table", t, func() {
		values, flags := pickPrompts(ui.Button)

		Convey("Every value axis gets a select preset to its default", func() {
			So(lo.Map(values, func(p *survey.Select, _ int) string { return p.Message }), ShouldResemble,
				[]string{ui.AxisButtonGroup, ui.AxisColor, ui.AxisVariant, ui.AxisSize})
			So(values[0].Default, ShouldEqual, "(none)")
			So(values[1].Default, ShouldEqual, "primary")
			So(values[3].Options, ShouldContain, "xs")
		})

		Convey("Flags are gathered in one multi select", func() {
			So(flags.Options, ShouldResemble, []string{
				ui.AxisBlock, ui.AxisSquare, ui.AxisLeading, ui.AxisTrailing, ui.AxisLoading, ui.AxisActive,
			})
		})

		Convey("Answers become a selection", func() {
			sel := pickedSelection(values, []string{"(none)", "neutral", "ghost", "lg"}, []string{ui.AxisBlock})
			So(sel, ShouldResemble, variant.Selection{
				ui.AxisColor:   "neutral",
				ui.AxisVariant: "ghost",
				ui.AxisSize:    "lg",
				ui.AxisBlock:   "true",
			})
			So(ui.Button.Check(sel), ShouldBeNil)
		})
	})
}

func TestEncodeYAML(t *testing.T) {
	Convey("YAML output keeps the json key order", t, func() {
		var buf bytes.Buffer
		So(encodeYAML(&buf, ui.App.Toaster), ShouldBeNil)
		So(buf.String(), ShouldEqual, "position: bottom-right\nexpand: true\nduration: 2000\n")
	})
}

func TestWithRequestID(t *testing.T) {
	Convey("Tagging a request", t, func() {
		Convey("A fresh id is added to empty headers", func() {
			h := withRequestID(nil)
			So(h.Get(requestIDHeader), ShouldHaveLength, 36)
			So(withRequestID(nil).Get(requestIDHeader), ShouldNotEqual, h.Get(requestIDHeader))
		})

		Convey("An existing id is kept", func() {
			h := withRequestID(http.Header{requestIDHeader: {"abc"}})
			So(h.Get(requestIDHeader), ShouldEqual, "abc")
		})
	})
}
