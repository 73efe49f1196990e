// SPDX-License-Identifier: MIT

package prep

import "errors"

// ErrEmptyTrain indicates that no row was assigned to the training
// partition, so there is nothing to fit bounds on.
var ErrEmptyTrain = errors.New("prep: training partition is empty")
