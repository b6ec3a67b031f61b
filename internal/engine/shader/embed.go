package shader

import _ "embed"

// GlobeVertex transforms every vertex by the ctm uniform.
//
//go:embed globe.vert
var GlobeVertex string

// GlobeFragment passes the interpolated vertex colour through.
//
//go:embed globe.frag
var GlobeFragment string
