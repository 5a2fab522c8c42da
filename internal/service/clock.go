package service

import "time"

// nowUTC stamps record timestamps; swappable in tests.
var nowUTC = func() time.Time { return time.Now().UTC() }
