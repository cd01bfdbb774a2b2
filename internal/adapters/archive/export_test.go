package archive

// WithTempDir sets the directory archives are written to.
func (p *Producer) WithTempDir(dir string) *Producer {
	p.tempDir = dir
	return p
}
