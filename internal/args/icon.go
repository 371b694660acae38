package args

// defaultIconBytes is the bundled fallback written to assets/minecraft.icns
// when a caller supplies no game icon (spec.md §4.L step 1). It's a minimal
// stand-in, not a production icon asset — swap the path this package writes
// to if you ship a real one.
var defaultIconBytes = []byte{0x69, 0x63, 0x6e, 0x73, 0x00, 0x00, 0x00, 0x08}
