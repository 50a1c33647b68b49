package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"

	"github.com/aglyzov/go-hamt/hamt"
)

var log = logging.MustGetLogger("example")

func main() {
	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stderr, "", 0),
		logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`),
	)
	logging.SetBackend(backend)
	logging.SetLevel(logging.INFO, "")

	m := hamt.NewString[string]()

	m.Set("foo", "bar")
	show(m, "foo")
	m.Set("bar", "baz")
	show(m, "bar")
	show(m, "foo")
	m.Set("foo", "baz")
	show(m, "foo")
	show(m, "bar")
	show(m, "baz")

	println("------")

	m.DebugDump()

	log.Infof("stats: %+v", m.Stats())
}

func show(m *hamt.Map[string, string], key string) {
	val, err := m.Find(key)

	switch {
	case errors.Is(err, hamt.ErrKeyNotFound):
		fmt.Printf("%s: NO %s!\n", key, key)
	case err != nil:
		log.Fatal(err)
	default:
		fmt.Printf("%s: %s\n", key, val)
	}
}
