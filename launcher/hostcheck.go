package launcher

import (
	"math"

	pscpu "github.com/shirou/gopsutil/v3/cpu"
	psmem "github.com/shirou/gopsutil/v3/mem"

	"github.com/ZettaAI/SEAMLeSS/config"
	"github.com/ZettaAI/SEAMLeSS/logger"
)

// CheckHost compares the declared resource request against what the host
// actually has, and warns about requests the host can't satisfy. Admission
// control belongs to the cluster manager, so this never fails the launch.
func CheckHost(req config.Slurm, log *logger.Logger) {
	cpus, err := pscpu.Counts(true)
	if err != nil {
		log.Error("Error detecting cpu cores", err)
		return
	}
	vmeminfo, err := psmem.VirtualMemory()
	if err != nil {
		log.Error("Error detecting memory", err)
		return
	}

	gb := math.Pow(1000, 3)
	ramGb := float64(vmeminfo.Total) / gb
	log.Debug("Detected host resources", "cpus", cpus, "ramGb", ramGb)

	if req.CpusPerTask > cpus {
		log.Warn("Requested more cpus than the host has",
			"requested", req.CpusPerTask, "host", cpus)
	}
	if req.RamGb > ramGb {
		log.Warn("Requested more memory than the host has",
			"requestedGb", req.RamGb, "hostGb", ramGb)
	}
}
