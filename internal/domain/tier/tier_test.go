package tier_test

import (
	"testing"

	"github.com/okian/discountmate/internal/domain/tier"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given the tier parser", t, func() {
		Convey("When parsing canonical names", func() {
			So(tier.Parse("bronze"), ShouldEqual, tier.Bronze)
			So(tier.Parse("silver"), ShouldEqual, tier.Silver)
			So(tier.Parse("gold"), ShouldEqual, tier.Gold)
			So(tier.Parse("platinum"), ShouldEqual, tier.Platinum)
		})

		Convey("When parsing mixed case and padded names", func() {
			So(tier.Parse("GOLD"), ShouldEqual, tier.Gold)
			So(tier.Parse("  Silver "), ShouldEqual, tier.Silver)
			So(tier.Parse("PlAtInUm"), ShouldEqual, tier.Platinum)
		})

		Convey("When parsing unknown names", func() {
			Convey("Then they should fall back to bronze", func() {
				So(tier.Parse(""), ShouldEqual, tier.Bronze)
				So(tier.Parse("diamond"), ShouldEqual, tier.Bronze)
				So(tier.Parse("42"), ShouldEqual, tier.Bronze)
			})
		})
	})
}

func TestOrdinalOrdering(t *testing.T) {
	Convey("Given all tiers", t, func() {
		Convey("Then ordinals should strictly increase with loyalty", func() {
			So(tier.Bronze.Ordinal(), ShouldBeLessThan, tier.Silver.Ordinal())
			So(tier.Silver.Ordinal(), ShouldBeLessThan, tier.Gold.Ordinal())
			So(tier.Gold.Ordinal(), ShouldBeLessThan, tier.Platinum.Ordinal())
		})
	})
}

func TestString(t *testing.T) {
	Convey("Given a tier", t, func() {
		Convey("Then String should round-trip through Parse", func() {
			for _, tr := range []tier.Tier{tier.Bronze, tier.Silver, tier.Gold, tier.Platinum} {
				So(tier.Parse(tr.String()), ShouldEqual, tr)
			}
		})

		Convey("And out-of-range values should stringify as bronze", func() {
			So(tier.Tier(99).String(), ShouldEqual, "bronze")
		})
	})
}
