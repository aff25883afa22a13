package app

import "github.com/specialistvlad/carcheck/internal/inspection"

// coreModules is the definitive list of runner modules compiled into the
// carcheck binary.
var coreModules = inspection.CoreModules
