package platformservice

import (
	"errors"
	"io"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// stubBackend fails every host query with err, or panics when panics is set.
type stubBackend struct {
	err    error
	panics bool
}

func (s stubBackend) fail() error {
	if s.panics {
		panic("host query exploded")
	}
	return s.err
}

func (s stubBackend) osArchitecture() (Architecture, error) { return ArchX64, s.fail() }
func (s stubBackend) osVersionString(PlatformID) (string, error) {
	return "Unix 1.2.3", s.fail()
}
func (s stubBackend) osDescription() (string, error) { return "Linux 1.2.3", s.fail() }
func (s stubBackend) machineName() (string, error) { return "box", s.fail() }
func (s stubBackend) userName() (string, error) { return "root", s.fail() }
func (s stubBackend) userDomainName() (string, error) { return "CORP", s.fail() }
func (s stubBackend) isUserInteractive() (bool, error) { return true, s.fail() }
func (s stubBackend) logicalDrives() ([]string, error) { return []string{"/"}, s.fail() }
func (s stubBackend) systemDirectory() (string, error) { return "/sys32", s.fail() }

// tickingBackend answers every host query with a value derived from a shared
// counter, so two calls never see the same answer.
type tickingBackend struct {
	calls *atomic.Int64
}

func newTickingBackend() tickingBackend {
	return tickingBackend{calls: new(atomic.Int64)}
}

func (b tickingBackend) next() int64 { return b.calls.Add(1) }

func (b tickingBackend) label(prefix string) string {
	return prefix + strconv.FormatInt(b.next(), 10)
}

func (b tickingBackend) osArchitecture() (Architecture, error) {
	if b.next()%2 == 0 {
		return ArchArm64, nil
	}
	return ArchX64, nil
}
func (b tickingBackend) osVersionString(PlatformID) (string, error) {
	return b.label("Unix 1.0.0."), nil
}
func (b tickingBackend) osDescription() (string, error) { return b.label("Linux #"), nil }
func (b tickingBackend) machineName() (string, error)   { return b.label("box"), nil }
func (b tickingBackend) userName() (string, error)      { return b.label("user"), nil }
func (b tickingBackend) userDomainName() (string, error) {
	return b.label("DOMAIN"), nil
}
func (b tickingBackend) isUserInteractive() (bool, error) { return b.next()%2 == 0, nil }
func (b tickingBackend) logicalDrives() ([]string, error) {
	return []string{b.label("/mnt/")}, nil
}
func (b tickingBackend) systemDirectory() (string, error) { return b.label(`C:\sys`), nil }

func newTestFacade(t *testing.T, b backend) (PlatformInfoFacade, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetOutput(io.Discard)

	return PlatformInfoFacade{host: b, log: logger}, hook
}

var errBoom = errors.New("boom")
