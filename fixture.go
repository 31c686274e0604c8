package fixture

import (
	"maps"

	"github.com/hnimtadd/fixture/utils"
)

const Version = "1.0.0"

// GlobalConfig is the name of the configuration profile in use.
const GlobalConfig = "default"

var defaultConfig = map[string]string{
	"debug": "false",
}

// Config returns a fresh copy of the default settings. Callers may modify
// the result freely.
func Config() map[string]string {
	return maps.Clone(defaultConfig)
}

// Add returns a + b, reporting whether the sum overflowed 32 bits.
func Add(a, b int32) (int32, bool) {
	return utils.AddWithOverflow(a, b)
}
