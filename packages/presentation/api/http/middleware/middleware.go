package middleware

import "classroom/packages/common/logger"

var log = logger.NewSource("MIDDLEWARE", logger.Default)
