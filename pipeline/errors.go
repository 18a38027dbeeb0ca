// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package pipeline

import "github.com/dsnet/fcodec/internal/errors"

func unknownTransform(t Transform) error {
	return errors.Ef(errors.Invalid, "pipeline: unknown transform %q", string(t))
}

func unknownCodec(c Codec) error {
	return errors.Ef(errors.Invalid, "pipeline: unknown codec %q", string(c))
}
