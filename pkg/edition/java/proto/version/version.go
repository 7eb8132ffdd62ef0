// Package version lists the Java edition protocol versions the translation layer supports.
package version

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.minekube.com/tab/pkg/proto"
)

var (
	Minecraft_1_7_2  = &proto.Version{Protocol: 4, Names: s("1.7.2", "1.7.3", "1.7.4", "1.7.5")}
	Minecraft_1_7_6  = &proto.Version{Protocol: 5, Names: s("1.7.6", "1.7.7", "1.7.8", "1.7.9", "1.7.10")}
	Minecraft_1_8    = &proto.Version{Protocol: 47, Names: s("1.8", "1.8.1", "1.8.2", "1.8.3", "1.8.4", "1.8.5", "1.8.6", "1.8.7", "1.8.8", "1.8.9")}
	Minecraft_1_9    = &proto.Version{Protocol: 107, Names: s("1.9")}
	Minecraft_1_9_1  = &proto.Version{Protocol: 108, Names: s("1.9.1")}
	Minecraft_1_9_2  = &proto.Version{Protocol: 109, Names: s("1.9.2")}
	Minecraft_1_9_4  = &proto.Version{Protocol: 110, Names: s("1.9.3", "1.9.4")}
	Minecraft_1_10   = &proto.Version{Protocol: 210, Names: s("1.10", "1.10.1", "1.10.2")}
	Minecraft_1_11   = &proto.Version{Protocol: 315, Names: s("1.11")}
	Minecraft_1_11_1 = &proto.Version{Protocol: 316, Names: s("1.11.1", "1.11.2")}
	Minecraft_1_12   = &proto.Version{Protocol: 335, Names: s("1.12")}
	Minecraft_1_12_1 = &proto.Version{Protocol: 338, Names: s("1.12.1")}
	Minecraft_1_12_2 = &proto.Version{Protocol: 340, Names: s("1.12.2")}
	Minecraft_1_13   = &proto.Version{Protocol: 393, Names: s("1.13")}
	Minecraft_1_13_1 = &proto.Version{Protocol: 401, Names: s("1.13.1")}
	Minecraft_1_13_2 = &proto.Version{Protocol: 404, Names: s("1.13.2")}
	Minecraft_1_14   = &proto.Version{Protocol: 477, Names: s("1.14")}
	Minecraft_1_14_1 = &proto.Version{Protocol: 480, Names: s("1.14.1")}
	Minecraft_1_14_2 = &proto.Version{Protocol: 485, Names: s("1.14.2")}
	Minecraft_1_14_3 = &proto.Version{Protocol: 490, Names: s("1.14.3")}
	Minecraft_1_14_4 = &proto.Version{Protocol: 498, Names: s("1.14.4")}
	Minecraft_1_15   = &proto.Version{Protocol: 573, Names: s("1.15")}
	Minecraft_1_15_1 = &proto.Version{Protocol: 575, Names: s("1.15.1")}
	Minecraft_1_15_2 = &proto.Version{Protocol: 578, Names: s("1.15.2")}
	Minecraft_1_16   = &proto.Version{Protocol: 735, Names: s("1.16")}
	Minecraft_1_16_1 = &proto.Version{Protocol: 736, Names: s("1.16.1")}
	Minecraft_1_16_2 = &proto.Version{Protocol: 751, Names: s("1.16.2")}
	Minecraft_1_16_3 = &proto.Version{Protocol: 753, Names: s("1.16.3")}
	Minecraft_1_16_4 = &proto.Version{Protocol: 754, Names: s("1.16.4", "1.16.5")}
	Minecraft_1_17   = &proto.Version{Protocol: 755, Names: s("1.17")}
	Minecraft_1_17_1 = &proto.Version{Protocol: 756, Names: s("1.17.1")}
	Minecraft_1_18   = &proto.Version{Protocol: 757, Names: s("1.18", "1.18.1")}
	Minecraft_1_18_2 = &proto.Version{Protocol: 758, Names: s("1.18.2")}
	Minecraft_1_19   = &proto.Version{Protocol: 759, Names: s("1.19")}
	Minecraft_1_19_1 = &proto.Version{Protocol: 760, Names: s("1.19.1", "1.19.2")}
	Minecraft_1_19_3 = &proto.Version{Protocol: 761, Names: s("1.19.3")}
	Minecraft_1_19_4 = &proto.Version{Protocol: 762, Names: s("1.19.4")}
	Minecraft_1_20   = &proto.Version{Protocol: 763, Names: s("1.20", "1.20.1")}
	Minecraft_1_20_2 = &proto.Version{Protocol: 764, Names: s("1.20.2")}
	Minecraft_1_20_3 = &proto.Version{Protocol: 765, Names: s("1.20.3", "1.20.4")}
	Minecraft_1_20_5 = &proto.Version{Protocol: 766, Names: s("1.20.5", "1.20.6")}
	Minecraft_1_21   = &proto.Version{Protocol: 767, Names: s("1.21", "1.21.1")}
	Minecraft_1_21_2 = &proto.Version{Protocol: 768, Names: s("1.21.2", "1.21.3")}
	Minecraft_1_21_4 = &proto.Version{Protocol: 769, Names: s("1.21.4")}
	Minecraft_1_21_5 = &proto.Version{Protocol: 770, Names: s("1.21.5")}
	Minecraft_1_21_6 = &proto.Version{Protocol: 771, Names: s("1.21.6")}
	Minecraft_1_21_7 = &proto.Version{Protocol: 772, Names: s("1.21.7", "1.21.8")}

	// Versions is every supported version, oldest first.
	Versions = []*proto.Version{
		Minecraft_1_7_2, Minecraft_1_7_6,
		Minecraft_1_8,
		Minecraft_1_9, Minecraft_1_9_1, Minecraft_1_9_2, Minecraft_1_9_4,
		Minecraft_1_10,
		Minecraft_1_11, Minecraft_1_11_1,
		Minecraft_1_12, Minecraft_1_12_1, Minecraft_1_12_2,
		Minecraft_1_13, Minecraft_1_13_1, Minecraft_1_13_2,
		Minecraft_1_14, Minecraft_1_14_1, Minecraft_1_14_2, Minecraft_1_14_3, Minecraft_1_14_4,
		Minecraft_1_15, Minecraft_1_15_1, Minecraft_1_15_2,
		Minecraft_1_16, Minecraft_1_16_1, Minecraft_1_16_2, Minecraft_1_16_3, Minecraft_1_16_4,
		Minecraft_1_17, Minecraft_1_17_1,
		Minecraft_1_18, Minecraft_1_18_2,
		Minecraft_1_19, Minecraft_1_19_1, Minecraft_1_19_3, Minecraft_1_19_4,
		Minecraft_1_20, Minecraft_1_20_2, Minecraft_1_20_3, Minecraft_1_20_5,
		Minecraft_1_21, Minecraft_1_21_2, Minecraft_1_21_4, Minecraft_1_21_5, Minecraft_1_21_6, Minecraft_1_21_7,
	}
)

var (
	// SupportedVersions is Versions. Protocols not in it are unsupported.
	SupportedVersions = Versions

	MinimumVersion = Versions[0]
	MaximumVersion = Versions[len(Versions)-1]

	// SupportedVersionsString is the supported range, e.g. for error messages.
	SupportedVersionsString = MinimumVersion.String() + "-" + MaximumVersion.String()

	byProtocol = func() map[proto.Protocol]*proto.Version {
		m := make(map[proto.Protocol]*proto.Version, len(Versions))
		for _, v := range Versions {
			m[v.Protocol] = v
		}
		return m
	}()
)

// Protocol adds Java edition lookups to proto.Protocol.
type Protocol proto.Protocol

// Version returns the supported version of the protocol or nil.
func (p Protocol) Version() *proto.Version {
	return byProtocol[proto.Protocol(p)]
}

func (p Protocol) Supported() bool { return p.Version() != nil }

// String is the version name with the protocol number, e.g. "1.12.2(340)",
// or only the number of an unsupported protocol.
func (p Protocol) String() string {
	if v := p.Version(); v != nil {
		return fmt.Sprintf("%s(%d)", v, int(p))
	}
	return strconv.Itoa(int(p))
}

// Minor is the minor release number, e.g. 13 for 1.13.2.
// Unsupported protocols report the minor of MinimumVersion.
func (p Protocol) Minor() int {
	v := p.Version()
	if v == nil {
		v = MinimumVersion
	}
	_, rest, _ := strings.Cut(v.FirstName(), ".")
	minor, _, _ := strings.Cut(rest, ".")
	n, _ := strconv.Atoi(minor)
	return n
}

// Normalize maps unsupported protocols to MinimumVersion, the layout
// every client can at least partially render.
func Normalize(protocol proto.Protocol) proto.Protocol {
	if Protocol(protocol).Supported() {
		return protocol
	}
	return MinimumVersion.Protocol
}

// Parse looks up a version by release name, e.g. "1.8.9", or protocol number.
func Parse(name string) (*proto.Version, error) {
	name = strings.TrimSpace(name)
	i := slices.IndexFunc(Versions, func(v *proto.Version) bool {
		return slices.Contains(v.Names, name)
	})
	if i >= 0 {
		return Versions[i], nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		if v := Protocol(n).Version(); v != nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("unknown Minecraft version %q (supported %s)", name, SupportedVersionsString)
}

func s(names ...string) []string { return names }
