// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Sink adapters for the two Settings action slots.

// LogrusLogging adapts a logrus logger into a Settings logging action:
// every recorded log message is emitted at info level.
func LogrusLogging(logger logrus.FieldLogger) func(message string) {
	return func(message string) {
		logger.Info(message)
	}
}

// LogrusFailure adapts a logrus logger into a Settings failure action:
// the terminal failure message is emitted at error level with the
// rendered log trace attached as a field.
func LogrusFailure(logger logrus.FieldLogger) func(message string, log Log) {
	return func(message string, log Log) {
		logger.WithField("trace", log.String()).Error(message)
	}
}

// FileLogging returns a Settings logging action appending one line per
// message to path on the given filesystem, plus a close function to
// release the file. The file is created when absent.
func FileLogging(fs afero.Fs, path string) (action func(message string), closeFile func() error, err error) {
	f, err := fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	action = func(message string) {
		_, _ = f.Write(append([]byte(message), '\n'))
	}
	return action, f.Close, nil
}
