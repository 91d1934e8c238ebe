package rule

import "errors"

// ErrBadRuleFormat marks serialized rule text that cannot be parsed.
var ErrBadRuleFormat = errors.New("malformed rule definition")
