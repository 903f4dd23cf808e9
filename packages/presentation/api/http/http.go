package transport

import "classroom/packages/common/logger"

var Logger = logger.NewSource("HTTP", logger.Default)
