package tree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/art/arena"
	"github.com/flier/art/node"
	. "github.com/flier/art/tree"
)

func TestDelete(t *testing.T) {
	Convey("Given a Delete function", t, func() {
		a := &arena.Arena{}

		Convey("Deleting from an empty tree returns nil", func() {
			var root node.Node

			leaf := Delete(a, &root, []byte("key"), 0)

			So(leaf, ShouldBeNil)
		})

		Convey("Deleting the sole leaf empties the ref", func() {
			var root node.Node
			Insert(a, &root, []byte("key"), []byte("value"), 0, true)

			leaf := Delete(a, &root, []byte("key"), 0)

			So(leaf, ShouldNotBeNil)
			So(leaf.Value(), ShouldResemble, []byte("value"))
			So(root, ShouldBeNil)
		})

		Convey("Deleting a non-matching leaf key returns nil and leaves it alone", func() {
			var root node.Node
			Insert(a, &root, []byte("key"), []byte("value"), 0, true)

			leaf := Delete(a, &root, []byte("other"), 0)

			So(leaf, ShouldBeNil)
			_, ok := Search(root, []byte("key"))
			So(ok, ShouldBeTrue)
		})

		Convey("Deleting one of two siblings collapses the Node4 onto the survivor", func() {
			var root node.Node
			Insert(a, &root, []byte("hello"), []byte("1"), 0, true)
			Insert(a, &root, []byte("help"), []byte("2"), 0, true)

			Delete(a, &root, []byte("hello"), 0)

			leaf, ok := root.(*node.Leaf)
			So(ok, ShouldBeTrue)
			So(leaf.Key(), ShouldResemble, []byte("help"))

			value, found := Search(root, []byte("help"))
			So(found, ShouldBeTrue)
			So(value, ShouldResemble, []byte("2"))
		})

		Convey("Deleting down through every variant shrinks the node family symmetrically", func() {
			var root node.Node
			for i := 0; i < 64; i++ {
				Insert(a, &root, []byte{byte(i)}, []byte{byte(i)}, 0, true)
			}
			So(root.Kind(), ShouldEqual, node.KindNode256)

			for i := 0; i < 17; i++ {
				Delete(a, &root, []byte{byte(i)}, 0)
			}
			So(root.Kind(), ShouldEqual, node.KindNode48)
			So(root.NumChildren(), ShouldEqual, 47)

			for i := 17; i < 49; i++ {
				Delete(a, &root, []byte{byte(i)}, 0)
			}
			So(root.Kind(), ShouldEqual, node.KindNode16)
			So(root.NumChildren(), ShouldEqual, 15)

			for i := 49; i < 61; i++ {
				Delete(a, &root, []byte{byte(i)}, 0)
			}
			So(root.Kind(), ShouldEqual, node.KindNode4)
			So(root.NumChildren(), ShouldEqual, 3)

			for i := 0; i < 64; i++ {
				_, ok := Search(root, []byte{byte(i)})
				want := i >= 61
				So(ok, ShouldEqual, want)
			}
		})

		Convey("Deleting repeatedly is idempotent", func() {
			var root node.Node
			Insert(a, &root, []byte("key"), []byte("value"), 0, true)

			Delete(a, &root, []byte("key"), 0)
			leaf := Delete(a, &root, []byte("key"), 0)

			So(leaf, ShouldBeNil)
		})
	})
}
