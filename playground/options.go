package playground

// Channel is the Rust release train the playground builds with.
type Channel int

const (
	ChannelStable Channel = iota
	ChannelBeta
	ChannelNightly
)

// Mode is the compilation profile.
type Mode int

const (
	ModeDebug Mode = iota
	ModeRelease
)

// CrateType describes whether the submitted code is compiled as a binary or
// as a library.
type CrateType int

const (
	CrateBinary CrateType = iota
	CrateLibrary
)

// AsmFlavor is the assembly syntax used when the compile target is assembly.
type AsmFlavor int

const (
	FlavorATT AsmFlavor = iota
	FlavorIntel
)

// Target is the artifact produced by a compile request.
type Target int

const (
	TargetAsm Target = iota
	TargetLLVMIR
	TargetMIR
	// TargetWasm is only available on the nightly channel.
	TargetWasm
)

// DemangleAssembly controls symbol demangling in assembly output.
type DemangleAssembly int

const (
	AsmDemangle DemangleAssembly = iota
	AsmMangle
)

// HideAssemblerDirectives controls whether assembler directives are kept in
// assembly output.
type HideAssemblerDirectives int

const (
	DirectivesHide HideAssemblerDirectives = iota
	DirectivesShow
)

var (
	channels   = newEnumTable[Channel]("channel", "stable", "beta", "nightly")
	modes      = newEnumTable[Mode]("mode", "debug", "release")
	crateTypes = newEnumTable[CrateType]("crate type", "bin", "lib")
	asmFlavors = newEnumTable[AsmFlavor]("assembly flavor", "att", "intel")
	targets    = newEnumTable[Target]("target", "asm", "llvm-ir", "mir", "wasm")
	demangles  = newEnumTable[DemangleAssembly]("demangle option", "demangle", "mangle")
	directives = newEnumTable[HideAssemblerDirectives]("assembler directives option", "hide", "show")
)

func ParseChannel(s string) (Channel, error) { return channels.parse(s) }
func ChannelValues() []string { return channels.strings() }
func (c Channel) String() string { return channels.render(c) }
func (c Channel) MarshalText() ([]byte, error) { return channels.marshal(c) }
func (c *Channel) UnmarshalText(b []byte) error { return c.Set(string(b)) }

// Set implements flag.Value.
func (c *Channel) Set(s string) error {
	v, err := ParseChannel(s)
	if err != nil {
		return err
	}

	*c = v
	return nil
}

func ParseMode(s string) (Mode, error) { return modes.parse(s) }
func ModeValues() []string { return modes.strings() }
func (m Mode) String() string { return modes.render(m) }
func (m Mode) MarshalText() ([]byte, error) { return modes.marshal(m) }
func (m *Mode) UnmarshalText(b []byte) error { return m.Set(string(b)) }

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}

	*m = v
	return nil
}

func ParseCrateType(s string) (CrateType, error) { return crateTypes.parse(s) }
func CrateTypeValues() []string { return crateTypes.strings() }
func (c CrateType) String() string { return crateTypes.render(c) }
func (c CrateType) MarshalText() ([]byte, error) { return crateTypes.marshal(c) }
func (c *CrateType) UnmarshalText(b []byte) error { return c.Set(string(b)) }

// Set implements flag.Value.
func (c *CrateType) Set(s string) error {
	v, err := ParseCrateType(s)
	if err != nil {
		return err
	}

	*c = v
	return nil
}

func ParseAsmFlavor(s string) (AsmFlavor, error) { return asmFlavors.parse(s) }
func AsmFlavorValues() []string { return asmFlavors.strings() }
func (f AsmFlavor) String() string { return asmFlavors.render(f) }
func (f AsmFlavor) MarshalText() ([]byte, error) { return asmFlavors.marshal(f) }
func (f *AsmFlavor) UnmarshalText(b []byte) error { return f.Set(string(b)) }

// Set implements flag.Value.
func (f *AsmFlavor) Set(s string) error {
	v, err := ParseAsmFlavor(s)
	if err != nil {
		return err
	}

	*f = v
	return nil
}

func ParseTarget(s string) (Target, error) { return targets.parse(s) }
func TargetValues() []string { return targets.strings() }
func (t Target) String() string { return targets.render(t) }
func (t Target) MarshalText() ([]byte, error) { return targets.marshal(t) }
func (t *Target) UnmarshalText(b []byte) error { return t.Set(string(b)) }

// Set implements flag.Value.
func (t *Target) Set(s string) error {
	v, err := ParseTarget(s)
	if err != nil {
		return err
	}

	*t = v
	return nil
}

func ParseDemangleAssembly(s string) (DemangleAssembly, error) { return demangles.parse(s) }
func DemangleAssemblyValues() []string { return demangles.strings() }
func (d DemangleAssembly) String() string { return demangles.render(d) }
func (d DemangleAssembly) MarshalText() ([]byte, error) { return demangles.marshal(d) }
func (d *DemangleAssembly) UnmarshalText(b []byte) error { return d.Set(string(b)) }

// Set implements flag.Value.
func (d *DemangleAssembly) Set(s string) error {
	v, err := ParseDemangleAssembly(s)
	if err != nil {
		return err
	}

	*d = v
	return nil
}

func ParseHideAssemblerDirectives(s string) (HideAssemblerDirectives, error) {
	return directives.parse(s)
}
func HideAssemblerDirectivesValues() []string { return directives.strings() }
func (h HideAssemblerDirectives) String() string { return directives.render(h) }
func (h HideAssemblerDirectives) MarshalText() ([]byte, error) { return directives.marshal(h) }
func (h *HideAssemblerDirectives) UnmarshalText(b []byte) error { return h.Set(string(b)) }

// Set implements flag.Value.
func (h *HideAssemblerDirectives) Set(s string) error {
	v, err := ParseHideAssemblerDirectives(s)
	if err != nil {
		return err
	}

	*h = v
	return nil
}
