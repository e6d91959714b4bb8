package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Building the launcher command", t, func() {
		Convey("Linux uses xdg-open", func() {
			argv, err := Command("linux", "https://kollelsys.com")
			So(err, ShouldBeNil)
			So(argv, ShouldResemble, []string{"xdg-open", "https://kollelsys.com"})
		})

		Convey("macOS uses open", func() {
			argv, err := Command("darwin", "https://kollelsys.com")
			So(err, ShouldBeNil)
			So(argv, ShouldResemble, []string{"open", "https://kollelsys.com"})
		})

		Convey("Windows goes through rundll32", func() {
			argv, err := Command("windows", "https://kollelsys.com")
			So(err, ShouldBeNil)
			So(argv, ShouldHaveLength, 3)
			So(argv[1], ShouldEqual, "url.dll,FileProtocolHandler")
		})

		Convey("Other systems are rejected", func() {
			_, err := Command("plan9", "https://kollelsys.com")
			So(err, ShouldNotBeNil)
		})
	})
}
