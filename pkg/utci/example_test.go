package utci_test

import (
	"errors"
	"fmt"

	"github.com/ja7ad/utci/pkg/utci"
)

func ExampleApprox() {
	ta, rh, tmrt, va := 25.0, 60.0, 30.0, 2.0

	vp := utci.RelativeHumidityToVaporPressure(ta, rh)
	fmt.Printf("vp=%.2f hPa utci=%.1f °C\n", vp, utci.Approx(ta, vp, tmrt, va))
	// Output: vp=19.02 hPa utci=25.6 °C
}

func ExampleSaturationVaporPressure() {
	for _, ta := range []float64{0, 20} {
		fmt.Printf("es(%.0f) = %.3f hPa\n", ta, utci.SaturationVaporPressure(ta))
	}
	// Output:
	// es(0) = 6.112 hPa
	// es(20) = 23.393 hPa
}

func ExampleCheckDomain() {
	err := utci.CheckDomain(20, 10, 20, 30)
	fmt.Println(errors.Is(err, utci.ErrWindSpeedRange))
	// Output: true
}
