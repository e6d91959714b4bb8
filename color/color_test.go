package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSemantic(t *testing.T) {
	Convey("Semantic colors", t, func() {
		So(Semantic("primary"), ShouldEqual, Indigo)
		So(Semantic("error"), ShouldEqual, Red)
		So(Semantic("mauve"), ShouldEqual, Gray)
	})
}
