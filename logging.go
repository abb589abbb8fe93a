package glot

import "github.com/sirupsen/logrus"

// logSubsys tags every log line emitted by this package. The only
// diagnostics this package ever logs are non-fatal: a language pattern
// that fails to compile attenuates highlighting, nothing more.
const logSubsys = "tokeniser"

var log = logrus.StandardLogger().WithField("subsys", logSubsys)

// SetLogger redirects the package diagnostics to l.
func SetLogger(l *logrus.Logger) {
	log = l.WithField("subsys", logSubsys)
}
