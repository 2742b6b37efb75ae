// Command worldseedr is a thin CLI front end over the generation kernel:
// generate a possibility tree and export it, or lint a possibility library
// before attempting generation against it.
package main

func main() {
	Execute()
}
