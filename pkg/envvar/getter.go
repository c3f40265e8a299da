package envvar

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// lookup returns the parsed environment variable n. Unset or malformed
// variables yield the first default (or T's zero value) and false.
func lookup[T any](n string, parse func(string) (T, error), defaults []T) (T, bool) {
	var defaultValue T
	if len(defaults) > 0 {
		defaultValue = defaults[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	v, err := parse(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %s=%q, incorrect format", n, str)
		return defaultValue, false
	}

	return v, true
}

func String(n string, args ...string) (string, bool) {
	return lookup(n, func(s string) (string, error) { return s, nil }, args)
}

func Int(n string, args ...int) (int, bool) {
	return lookup(n, strconv.Atoi, args)
}

func Bool(n string, args ...bool) (bool, bool) {
	return lookup(n, strconv.ParseBool, args)
}

func SetBool(n string, v *bool) bool {
	b, ok := Bool(n)
	if ok {
		*v = b
	}

	return ok
}
