// Package internal contains the SDL plumbing behind the marquee screens:
// window and renderer setup, logging, theming, fonts, input mapping, icon
// rasterizing, and asynchronous image loading.
// Types and functions in this package are not part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // CA roots for https image URLs on devices without a system bundle
