package commands

var teslatronTable = map[string]string{
	"get_SAMPLE_T":       "oi.decs.temperature_control.SPR_CLL_CL.L-S501.temperature",
	"set_SAMPLE_T":       "oi.decs.temperature_control.SPR_CLL_CL.setpoint",
	"get_PROBE_T":        "oi.decs.temperature_control.SPR_CLL_CL.L-S501.temperature",
	"set_PROBE_T":        "oi.decs.temperature_control.SPR_CLL_CL.setpoint",
	"get_PROBE_TARGET_T": "oi.decs.temperature_control.SPR_CLL_CL.setpoint",
	"get_PROBE_H":        "oi.decs.temperature_control.SPR_CLL_CL.L-H502.power",
	"set_PROBE_H":        "oi.decs.temperature_control.SPR_CLL_CL.L-H502.set_power",
	"set_PROBE_H_OFF":    "oi.decs.temperature_control.SPR_CLL_CL.L-H502.set_power",
	"get_VTI_T":          "oi.decs.temperature_control.VTI_1KP_CL.N-S501.temperature",
	"set_VTI_T":          "oi.decs.temperature_control.VTI_1KP_CL.setpoint",
	"get_VTI_TARGET_T":   "oi.decs.temperature_control.VTI_1KP_CL.setpoint",
	"get_VTI_H":          "oi.decs.temperature_control.VTI_1KP_CL.N-H502.power",
	"set_VTI_H":          "oi.decs.temperature_control.VTI_1KP_CL.N-H502.set_power",
	"set_VTI_H_OFF":      "oi.decs.temperature_control.VTI_1KP_CL.N-H502.set_power",
	"get_PT2_T":          "oi.decs.temperature_control.G-S701.temperature",
	"get_PT1_T":          "oi.decs.temperature_control.G-S801.temperature",
	"get_PRES":           "oi.decs.pressure_control.VTI_FCV_CL.C-PG901.pressure",
	"get_TARGET_PRES":    "oi.decs.pressure_control.VTI_FCV_CL.pressure_setpoint",
	"set_PRES":           "oi.decs.pressure_control.VTI_FCV_CL.set_pressure_setpoint",
	"get_NEEDLE_PERC":    "oi.decs.pressure_control.VTI_FCV_CL.C-NV501.state",
	"set_NEEDLE_PERC":    "oi.decs.pressure_control.VTI_FCV_CL.set_valve_open_percentage",
	"get_MAG_T":          "oi.decs.temperature_control.M-S701.temperature",
	"get_MAG_VEC":        "oi.decs.magnetic_field_control.VRM_01.magnetic_field_vector",
	"get_MAG_STATE":      "oi.decs.magnetic_field_control.VRM_01.state",
	"get_SWZ_STATE":      "oi.decs.magnetic_field_control.VRM_01.SWZ.state",
	"get_MAG_TARGET":     "oi.decs.magnetic_field_control.VRM_01.field_target",
	"set_MAG_TARGET":     "oi.decs.magnetic_field_control.VRM_01.set_field_target",
	"set_MAG_STATE":      "oi.decs.magnetic_field_control.VRM_01.set_state",
	"set_MAG_X_STATE":    "oi.decs.magnetic_field_control.VRM_01.MAG_X.set_state",
	"set_MAG_Y_STATE":    "oi.decs.magnetic_field_control.VRM_01.MAG_Y.set_state",
	"set_MAG_Z_STATE":    "oi.decs.magnetic_field_control.VRM_01.MAG_Z.set_state",
	"get_MAG_CURR_VEC":   "oi.decs.magnetic_field_control.VRM_01.current_vector",
	"set_CURR_TARGET":    "oi.decs.magnetic_field_control.VRM_01.set_output_current_target",
	"PUBLISH":            "oi.decs.teslatron.events",
	"get_PV404":          "oi.decs.teslatron.C-AV915.state",
	"get_PV403":          "oi.decs.teslatron.C-AV911.state",
	"get_PV402":          "oi.decs.teslatron.C-AV908.state",
	"get_PV401":          "oi.decs.teslatron.C-AV903.state",
	"set_PV404":          "oi.decs.teslatron.C-AV915.state",
	"set_PV403":          "oi.decs.teslatron.C-AV911.state",
	"set_PV402":          "oi.decs.teslatron.C-AV908.state",
	"set_PV401":          "oi.decs.teslatron.C-AV903.state",
	"set_CIRC_RATE":      "oi.decs.teslatron.set_circulate_rate",
	"set_CIRC_LINK":      "oi.decs.teslatron.set_circulate_linked",
	"set_CIRC_TEMP":      "oi.decs.teslatron.set_circulate_sample_temperature",
	"get_CIRC_RATE":      "oi.decs.teslatron.circulate_rate",
	"get_CIRC_LINK":      "oi.decs.teslatron.circulate_linked",
	"get_CIRC_TEMP":      "oi.decs.teslatron.circulate_sample_temperature",
	"get_a_WAMP_error":   "oi.decs.THIS_WONT_WORK", // used for testing only
	"set_a_WAMP_error":   "oi.decs.THIS_WONT_WORK",
}
