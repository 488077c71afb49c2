package game

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Built-in pass-through program, used when the shader files can not be
// read, compiled or linked.
const basicVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec2 aTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec2 TexCoord;

void main() {
    gl_Position = projection * view * model * vec4(aPos, 1.0);
    TexCoord = aTexCoord;
}
` + "\x00"

const basicFragSrc = `#version 410 core

uniform sampler2D textureSampler;

in vec2 TexCoord;
out vec4 FragColor;

void main() {
    FragColor = texture(textureSampler, TexCoord);
}
` + "\x00"

var shaderKinds = map[uint32]string{
	gl.VERTEX_SHADER:   "vertex",
	gl.FRAGMENT_SHADER: "fragment",
}

// infoLog reads the compile or link log of a shader or program object.
func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log"
	}
	buf := make([]byte, n)
	getLog(id, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, src, nil)
	free()
	gl.CompileShader(shader)

	var ok int32
	if gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok); ok == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile %s shader: %s", shaderKinds[kind], msg)
	}
	return shader, nil
}

// linkProgram compiles both stages and links them. The stage objects are
// released whether or not linking succeeds.
func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	var stages []uint32
	defer func() {
		for _, s := range stages {
			gl.DeleteShader(s)
		}
	}()
	for _, st := range []struct {
		kind uint32
		src  string
	}{{gl.VERTEX_SHADER, vertSrc}, {gl.FRAGMENT_SHADER, fragSrc}} {
		s, err := compileShader(st.kind, st.src)
		if err != nil {
			return 0, err
		}
		stages = append(stages, s)
	}

	program := gl.CreateProgram()
	for _, s := range stages {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)
	for _, s := range stages {
		gl.DetachShader(program, s)
	}

	var ok int32
	if gl.GetProgramiv(program, gl.LINK_STATUS, &ok); ok == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return program, nil
}

// readShaderSource returns the file contents NUL-terminated for gl.Strs.
func readShaderSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader: %w", err)
	}
	return string(data) + "\x00", nil
}

// ShaderManager owns named shader programs.
type ShaderManager struct {
	programs map[string]uint32
	logger   *log.Logger
}

func NewShaderManager(logger *log.Logger) *ShaderManager {
	return &ShaderManager{programs: make(map[string]uint32), logger: logger}
}

// Load builds program name from two source files. If that fails the error
// is logged and, unless name already has a program, the built-in
// pass-through program is installed instead. Only a failure of the built-in
// program is returned.
func (sm *ShaderManager) Load(name, vertPath, fragPath string) error {
	prog, err := sm.loadFiles(vertPath, fragPath)
	if err == nil {
		if old, ok := sm.programs[name]; ok {
			gl.DeleteProgram(old)
		}
		sm.programs[name] = prog
		sm.logger.Debug("shader loaded", "name", name, "vert", vertPath, "frag", fragPath)
		return nil
	}

	sm.logger.Warn("failed to load shader", "name", name, "error", err)
	if _, ok := sm.programs[name]; ok {
		return nil
	}
	prog, err = linkProgram(basicVertSrc, basicFragSrc)
	if err != nil {
		return fmt.Errorf("built-in shader %s: %w", name, err)
	}
	sm.programs[name] = prog
	return nil
}

func (sm *ShaderManager) loadFiles(vertPath, fragPath string) (uint32, error) {
	vert, err := readShaderSource(vertPath)
	if err != nil {
		return 0, err
	}
	frag, err := readShaderSource(fragPath)
	if err != nil {
		return 0, err
	}
	return linkProgram(vert, frag)
}

// Get returns the program for name, or 0 if there is none.
func (sm *ShaderManager) Get(name string) uint32 {
	prog, ok := sm.programs[name]
	if !ok {
		sm.logger.Error("shader not found", "name", name)
		return 0
	}
	return prog
}

// Destroy deletes every program.
func (sm *ShaderManager) Destroy() {
	for name, prog := range sm.programs {
		gl.DeleteProgram(prog)
		delete(sm.programs, name)
	}
}
