package icon

import (
	"testing"

	"github.com/rtgrab-cli/rtgrab/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Get", t, func() {
		Convey("Plain variant", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Success), ShouldEqual, "[ok]")
			So(Get(Fail), ShouldEqual, "[fail]")
		})

		Convey("Emoji variant", func() {
			viper.Set(key.IconsVariant, "emoji")
			So(Get(Success), ShouldEqual, "✅")
		})

		Convey("Unknown variant falls back to plain", func() {
			viper.Set(key.IconsVariant, "bogus")
			So(Get(Progress), ShouldEqual, "...")
		})
	})
}

func TestAvailableVariants(t *testing.T) {
	Convey("AvailableVariants", t, func() {
		So(AvailableVariants(), ShouldContain, "plain")
		So(AvailableVariants(), ShouldContain, "emoji")
	})
}
