package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
)

func TestTruncateUTF8(t *testing.T) {
	Convey("truncateUTF8", t, func() {
		Convey("Leaves short text alone", func() {
			So(truncateUTF8("python", 10), ShouldEqual, "python")
		})

		Convey("Never splits a multi-byte rune", func() {
			text := strings.Repeat("a", 9) + "é"
			cut := truncateUTF8(text, 10)
			So(cut, ShouldEqual, strings.Repeat("a", 9))
			So(utf8.ValidString(cut), ShouldBeTrue)
		})

		Convey("Keeps whole runes that fit", func() {
			text := strings.Repeat("日本", 20000)
			cut := truncateUTF8(text, maxEmbeddingChars)
			So(len(cut), ShouldBeLessThanOrEqualTo, maxEmbeddingChars)
			So(utf8.ValidString(cut), ShouldBeTrue)
			So(len(cut), ShouldEqual, maxEmbeddingChars/3*3)
		})
	})
}

func TestNewGeminiService(t *testing.T) {
	Convey("A blank API key is rejected before any client is built", t, func() {
		_, err := NewGeminiService(context.Background(), "  ", "m", "e", zap.NewNop())
		So(err, ShouldNotBeNil)
	})
}
