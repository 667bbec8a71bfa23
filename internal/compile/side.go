// Package compile builds the option records handed to the compiler.
package compile

import (
	"github.com/sveltebuild/sveltebuild/pkg/types"
)

// ResolveSide picks the code-generation side for a build invocation. An
// explicit forceSide always wins; otherwise the side follows the bundler's
// target platform. An unrecognized or absent target resolves to SideNone so
// the compiler applies its own default instead of risking a silent
// miscompile.
func ResolveSide(opts *types.Options, bctx types.BuildContext) types.Side {
	if opts != nil && opts.ForceSide != types.SideNone {
		return opts.ForceSide
	}
	switch bctx.Target {
	case types.TargetBrowser:
		return types.SideClient
	case types.TargetNode, types.TargetBun:
		return types.SideServer
	}
	return types.SideNone
}
