package view_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/art/view"
)

func TestEqual(t *testing.T) {
	Convey("Given the Equal helper", t, func() {
		So(view.Equal([]byte("abc"), []byte("abc")), ShouldBeTrue)
		So(view.Equal([]byte("abc"), []byte("abd")), ShouldBeFalse)
		So(view.Equal([]byte("abc"), []byte("ab")), ShouldBeFalse)
		So(view.Equal(nil, nil), ShouldBeTrue)
		So(view.Equal([]byte{}, nil), ShouldBeTrue)
	})
}

func TestHasPrefix(t *testing.T) {
	Convey("Given the HasPrefix helper", t, func() {
		So(view.HasPrefix([]byte("hello world"), []byte("hello")), ShouldBeTrue)
		So(view.HasPrefix([]byte("hello"), []byte("hello")), ShouldBeTrue)
		So(view.HasPrefix([]byte("hello"), []byte("hello world")), ShouldBeFalse)
		So(view.HasPrefix([]byte("hello"), nil), ShouldBeTrue)
		So(view.HasPrefix([]byte("abc"), []byte("abd")), ShouldBeFalse)
	})
}

func TestCommonPrefixLen(t *testing.T) {
	Convey("Given the CommonPrefixLen helper", t, func() {
		Convey("From the start", func() {
			So(view.CommonPrefixLen([]byte("hello"), []byte("help"), 0), ShouldEqual, 3)
			So(view.CommonPrefixLen([]byte("hello"), []byte("hello"), 0), ShouldEqual, 5)
			So(view.CommonPrefixLen([]byte("hello"), []byte("world"), 0), ShouldEqual, 0)
		})

		Convey("From a nonzero depth", func() {
			So(view.CommonPrefixLen([]byte("foobar"), []byte("foobaz"), 4), ShouldEqual, 5)
		})
	})
}

func TestClone(t *testing.T) {
	Convey("Given the Clone helper", t, func() {
		Convey("A cloned slice holds an equal but distinct copy", func() {
			orig := []byte("hello")
			cloned := view.Clone(orig)

			So(cloned, ShouldResemble, orig)

			cloned[0] = 'H'
			So(orig[0], ShouldEqual, byte('h'))
		})

		Convey("Cloning nil returns nil", func() {
			So(view.Clone(nil), ShouldBeNil)
		})
	})
}
