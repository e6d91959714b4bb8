package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/kollel-app/kollel/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

// echoServer answers every request with a json description of what it received.
func echoServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"method":  r.Method,
			"path":    r.URL.Path,
			"query":   r.URL.RawQuery,
			"headers": r.Header,
			"body":    string(body),
		})
	}))
}

func TestRequestSuccess(t *testing.T) {
	Convey("Given a backend answering with json", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = io.WriteString(w, `{"id":12345678901234567890,"name":"Rabbi A","tags":["x"],"active":true}`)
		}))
		Reset(srv.Close)

		request := Use(srv.URL)

		Convey("The decoded body is returned without wrapping", func() {
			result := request(context.Background(), "/students/1")
			So(result.OK(), ShouldBeTrue)
			So(result.Body, ShouldResemble, map[string]any{
				"id":     json.Number("12345678901234567890"),
				"name":   "Rabbi A",
				"tags":   []any{"x"},
				"active": true,
			})
			So(result.Value(), ShouldResemble, result.Body)
		})

		Convey("Repeated calls yield identical results", func() {
			first := request(context.Background(), "/students/1")
			second := request(context.Background(), "/students/1")
			So(second, ShouldResemble, first)
		})

		Convey("Decode fills a typed value", func() {
			var student struct {
				Name   string `json:"name"`
				Active bool   `json:"active"`
			}
			So(request(context.Background(), "/students/1").Decode(&student), ShouldBeNil)
			So(student.Name, ShouldEqual, "Rabbi A")
			So(student.Active, ShouldBeTrue)
		})
	})
}

func TestRequestOptions(t *testing.T) {
	Convey("Given an echoing backend", t, func() {
		srv := echoServer()
		Reset(srv.Close)

		echo := func(result Result) map[string]any {
			So(result.OK(), ShouldBeTrue)
			body, ok := result.Body.(map[string]any)
			So(ok, ShouldBeTrue)
			return body
		}
		header := func(body map[string]any, name string) any {
			headers := body["headers"].(map[string]any)
			if v, ok := headers[name]; ok {
				return v.([]any)[0]
			}
			return nil
		}

		Convey("The base URL is joined with the path", func() {
			body := echo(New(srv.URL + "/api/").Request(context.Background(), "/stipends"))
			So(body["path"], ShouldEqual, "/api/stipends")
			So(body["method"], ShouldEqual, http.MethodGet)
		})

		Convey("Default json headers are sent", func() {
			body := echo(New(srv.URL).Request(context.Background(), "/"))
			So(header(body, "Content-Type"), ShouldEqual, "application/json")
			So(header(body, "Accept"), ShouldEqual, "application/json")
		})

		Convey("Method, query and body pass through", func() {
			body := echo(New(srv.URL).Request(context.Background(), "/attendance", Options{
				Method: "post",
				Query:  url.Values{"day": {"2026-10-19"}},
				Body:   map[string]any{"present": true},
			}))
			So(body["method"], ShouldEqual, http.MethodPost)
			So(body["query"], ShouldEqual, "day=2026-10-19")
			So(body["body"], ShouldEqual, `{"present":true}`)
		})

		Convey("A string body is sent verbatim", func() {
			body := echo(New(srv.URL).Request(context.Background(), "/", Options{Method: http.MethodPut, Body: "raw"}))
			So(body["body"], ShouldEqual, "raw")
		})

		Convey("A per-request base URL wins over the captured one", func() {
			body := echo(New("https://unreachable.invalid").Request(context.Background(), "/x", Options{BaseURL: srv.URL}))
			So(body["path"], ShouldEqual, "/x")
		})

		Convey("Later options overlay earlier ones", func() {
			body := echo(New(srv.URL).Request(context.Background(), "/",
				Options{Method: http.MethodPost, Headers: http.Header{"X-A": {"1"}}},
				Options{Headers: http.Header{"X-B": {"2"}}},
			))
			So(body["method"], ShouldEqual, http.MethodPost)
			So(header(body, "X-A"), ShouldEqual, "1")
			So(header(body, "X-B"), ShouldEqual, "2")
		})

		Convey("With the merge policy custom headers keep the defaults", func() {
			body := echo(New(srv.URL).Request(context.Background(), "/", Options{
				Headers: http.Header{"X-Custom": {"1"}},
			}))
			So(header(body, "X-Custom"), ShouldEqual, "1")
			So(header(body, "Content-Type"), ShouldEqual, "application/json")
			So(header(body, "Accept"), ShouldEqual, "application/json")
		})

		Convey("With the replace policy custom headers drop the defaults", func() {
			body := echo(New(srv.URL, WithHeaderPolicy(HeaderReplace)).Request(context.Background(), "/", Options{
				Headers: http.Header{"X-Custom": {"1"}},
			}))
			So(header(body, "X-Custom"), ShouldEqual, "1")
			So(header(body, "Content-Type"), ShouldBeNil)
			So(header(body, "Accept"), ShouldBeNil)
		})

		Convey("With the replace policy a json body is still labelled", func() {
			body := echo(New(srv.URL, WithHeaderPolicy(HeaderReplace)).Request(context.Background(), "/", Options{
				Method:  http.MethodPost,
				Headers: http.Header{"X-Custom": {"1"}},
				Body:    []int{1, 2},
			}))
			So(header(body, "Content-Type"), ShouldEqual, "application/json")
		})
	})
}

func TestRequestFailures(t *testing.T) {
	Convey("Request failures never escape as errors", t, func() {
		Convey("A transport failure becomes the fallback record", func() {
			client := New("https://kollelsys.com", WithDoer(doerFunc(func(*http.Request) (*http.Response, error) {
				return nil, errors.New("dial tcp: no such host")
			})))
			result := client.Request(context.Background(), "/students")
			So(result.OK(), ShouldBeFalse)
			So(result.Failure, ShouldResemble, &Failure{Success: false, Message: "An unexpected error occurred.", Status: 500})
			So(result.Value(), ShouldEqual, result.Failure)
		})

		Convey("A closed server is a transport failure", func() {
			srv := httptest.NewServer(http.NotFoundHandler())
			srv.Close()
			result := Use(srv.URL)(context.Background(), "/")
			So(result.Failure, ShouldResemble, &Failure{Message: FallbackMessage, Status: FallbackStatus})
		})

		Convey("Structured error data without a response is normalized", func() {
			client := New("https://kollelsys.com", WithDoer(doerFunc(func(r *http.Request) (*http.Response, error) {
				return nil, &RequestError{Method: r.Method, URL: r.URL.String(), Status: 404, Data: map[string]any{"message": "X"}}
			})))
			result := client.Request(context.Background(), "/students/9")
			So(result.Failure, ShouldResemble, &Failure{Success: false, Message: "X", Status: 404})
		})

		Convey("An error status returns the full response verbatim", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = io.WriteString(w, `{"success":false,"message":"name is required"}`)
			}))
			defer srv.Close()

			result := Use(srv.URL)(context.Background(), "/students", Options{Method: http.MethodPost, Body: map[string]any{}})
			So(result.Failure, ShouldBeNil)
			So(result.Response, ShouldNotBeNil)
			So(result.Response.Status, ShouldEqual, http.StatusUnprocessableEntity)
			So(result.Response.StatusText, ShouldEqual, "Unprocessable Entity")
			So(result.Response.URL, ShouldEqual, srv.URL+"/students")
			So(result.Response.Data, ShouldResemble, map[string]any{"success": false, "message": "name is required"})
			So(result.Value(), ShouldEqual, result.Response)
		})

		Convey("An html error page is returned as text", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.WriteHeader(http.StatusBadGateway)
				_, _ = io.WriteString(w, "<h1>Bad Gateway</h1>")
			}))
			defer srv.Close()

			result := Use(srv.URL)(context.Background(), "/")
			So(result.Response.Data, ShouldEqual, "<h1>Bad Gateway</h1>")
		})

		Convey("An unencodable body becomes the fallback record", func() {
			result := New("https://kollelsys.com").Request(context.Background(), "/", Options{
				Method: http.MethodPost,
				Body:   map[string]any{"ch": make(chan int)},
			})
			So(result.Failure, ShouldResemble, &Failure{Message: FallbackMessage, Status: FallbackStatus})
		})

		Convey("A panicking transport is recovered", func() {
			client := New("https://kollelsys.com", WithDoer(doerFunc(func(*http.Request) (*http.Response, error) {
				panic("boom")
			})))
			result := client.Request(context.Background(), "/")
			So(result.Failure, ShouldResemble, &Failure{Message: FallbackMessage, Status: FallbackStatus})
		})
	})
}

func TestBaseURLCapture(t *testing.T) {
	Convey("Given a helper built from the configured api url", t, func() {
		current := echoServer()
		Reset(current.Close)
		moved := echoServer()
		Reset(moved.Close)
		Reset(viper.Reset)

		viper.Set(key.APIURL, current.URL+"/v1")
		request := Use(viper.GetString(key.APIURL))

		Convey("Changing the config afterwards does not move the helper", func() {
			viper.Set(key.APIURL, moved.URL+"/v2")

			result := request(context.Background(), "/ping")
			So(result.OK(), ShouldBeTrue)

			body := result.Body.(map[string]any)
			So(body["path"], ShouldEqual, "/v1/ping")

			Convey("A helper built after the change uses the new url", func() {
				fresh := Use(viper.GetString(key.APIURL))(context.Background(), "/ping")
				So(fresh.OK(), ShouldBeTrue)
				So(fresh.Body.(map[string]any)["path"], ShouldEqual, "/v2/ping")
			})
		})
	})
}
