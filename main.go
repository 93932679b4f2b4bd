// @title Anti-Social web API
// @version 1.0
// @description JSON endpoints of the Anti-Social web frontend.
// @host localhost:3000
// @BasePath /

package main

import "github.com/nachofazah/Ciu-RedSocial/cmd"

func main() {
	cmd.Execute()
}
