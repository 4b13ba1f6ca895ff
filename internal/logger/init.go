package logger

import "github.com/sirupsen/logrus"

// Merchant is the shared log for the merchant directory: provisioning steps,
// asset registration, event publishing.
var Merchant *logrus.Logger

func InitLogger() {
	Merchant = NewLogger("merchant")
}
