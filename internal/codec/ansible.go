package codec

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"tiaforge/internal/domain"

	"gopkg.in/yaml.v3"
)

// AnsibleCodec exports the addressed devices of a run as an Ansible
// inventory, one group per subnet.
type AnsibleCodec struct{}

// NewAnsibleCodec creates a new Ansible codec
func NewAnsibleCodec() *AnsibleCodec {
	return &AnsibleCodec{}
}

// Format returns the codec format identifier
func (c *AnsibleCodec) Format() string {
	return "ansible-inventory"
}

type ansibleInventory struct {
	All ansibleGroup `yaml:"all"`
}

type ansibleGroup struct {
	Children map[string]ansibleGroupDef `yaml:"children,omitempty"`
	Vars     map[string]interface{}     `yaml:"vars,omitempty"`
}

type ansibleGroupDef struct {
	Hosts map[string]ansibleHost `yaml:"hosts,omitempty"`
	Vars  map[string]interface{} `yaml:"vars,omitempty"`
}

type ansibleHost struct {
	AnsibleHost string                 `yaml:"ansible_host,omitempty"`
	Vars        map[string]interface{} `yaml:",inline"`
}

var groupNameCleaner = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// groupName turns a subnet name such as "PN/IE_1" into a valid group name
func groupName(subnet string) string {
	name := strings.Trim(groupNameCleaner.ReplaceAllString(strings.ToLower(subnet), "_"), "_")
	if name == "" {
		return "ungrouped"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "subnet_" + name
	}
	return name
}

// Export writes every interface that received an address. Devices with
// several interfaces keep the first address; failed interfaces are left out.
func (c *AnsibleCodec) Export(report *domain.Report, w io.Writer) error {
	devices := make(map[string]domain.DeviceReport, len(report.Devices))
	for _, d := range report.Devices {
		devices[d.DeviceName] = d
	}

	inv := ansibleInventory{All: ansibleGroup{
		Children: make(map[string]ansibleGroupDef),
		Vars:     map[string]interface{}{"tia_project": report.Project},
	}}

	for _, iface := range report.Interfaces {
		if iface.Address == "" || iface.Status == domain.InterfaceFailed || iface.Status == domain.InterfaceSkipped {
			continue
		}

		gname := groupName(iface.Subnet)
		group, ok := inv.All.Children[gname]
		if !ok {
			group = ansibleGroupDef{
				Hosts: make(map[string]ansibleHost),
				Vars:  map[string]interface{}{"subnet": iface.Subnet},
			}
			if report.IoSystem != "" {
				group.Vars["io_system"] = report.IoSystem
			}
			inv.All.Children[gname] = group
		}
		if _, exists := group.Hosts[iface.Device]; exists {
			continue
		}

		vars := map[string]interface{}{"io_role": string(iface.Status)}
		if d, ok := devices[iface.Device]; ok {
			vars["device_type"] = d.DeviceType
			vars["order_number"] = d.CatalogID
		}
		group.Hosts[iface.Device] = ansibleHost{AnsibleHost: iface.Address, Vars: vars}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&inv); err != nil {
		return fmt.Errorf("failed to encode Ansible inventory: %w", err)
	}

	return nil
}
