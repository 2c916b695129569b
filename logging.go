package typeref

import (
	"github.com/mandelsoft/logging"

	"github.com/ygrebnov/typeref/constants"
)

var REALM = logging.DefineRealm(constants.LogRealm, "generic type argument resolution")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
