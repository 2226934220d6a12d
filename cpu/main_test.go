package cpu

import (
	"os"
	"testing"

	"github.com/ezrec/m6502/translate"
)

func TestMain(m *testing.M) {
	// Error text assertions are written for en-US.
	if err := translate.SetLanguage(translate.DefaultLocale); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}
