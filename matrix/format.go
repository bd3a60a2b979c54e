// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// ElementFormat is the fixed-width verb used for every rendered element.
const ElementFormat = "%12.5g"

// Format renders m as Rows() lines, each holding Cols() fields of ElementFormat.
// Every line ends with '\n'; a 0×0 matrix renders as "".
// Elements are read through At, so triangular layouts print their zero lower part.
func Format(m Matrix) string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return sb.String()
			}
			fmt.Fprintf(&sb, ElementFormat, v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
