package linkptr

// noCopy makes `go vet -copylocks` flag a Ptr copied by value. Copying
// a Ptr would leave its ring neighbors pointing at the original's link
// node, so a Ptr must only ever be used through the pointer returned
// by its constructor.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
