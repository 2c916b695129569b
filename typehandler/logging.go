package typehandler

import (
	"github.com/mandelsoft/logging"

	"github.com/ygrebnov/typeref/constants"
)

var REALM = logging.DefineRealm(constants.LogRealm+"/typehandler", "type handler registry")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
