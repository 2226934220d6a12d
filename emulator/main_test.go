package emulator

import (
	"os"
	"testing"

	"github.com/ezrec/m6502/translate"
)

func TestMain(m *testing.M) {
	if err := translate.SetLanguage(translate.DefaultLocale); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}
