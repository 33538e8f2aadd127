package commands

// proteoxV3Table is the Proteox wiring for DECS 1.4 or newer.
var proteoxV3Table = map[string]string{
	"get_SAMPLE_T":     "oi.decs.temperature_control.b01_101_cl.b01_s101.temperature",
	"set_SAMPLE_T":     "oi.decs.temperature_control.b01_101_cl.setpoint",
	"get_MC_T":         "oi.decs.temperature_control.b01_101_cl.b01_s101.temperature",
	"set_MC_T":         "oi.decs.temperature_control.b01_101_cl.setpoint",
	"get_MC_T_SP":      "oi.decs.temperature_control.b01_101_cl.setpoint",
	"get_MC_H":         "oi.decs.temperature_control.b01_101_cl.b01_h101.power",
	"set_MC_H":         "oi.decs.temperature_control.b01_101_cl.b01_h101.power",
	"set_MC_H_OFF":     "oi.decs.temperature_control.b01_101_cl.b01_h101.power",
	"get_STILL_T":      "oi.decs.temperature_control.b01_s301.temperature",
	"get_STILL_H":      "oi.decs.temperature_control.b01_h301.power",
	"set_STILL_H":      "oi.decs.temperature_control.b01_h301.power",
	"set_STILL_H_OFF":  "oi.decs.temperature_control.b01_h301.power",
	"get_CP_T":         "oi.decs.temperature_control.b01_s201.temperature",
	"get_SRB_T":        "oi.decs.temperature_control.c01_401_cl.c01_s401.temperature",
	"get_DR2_T":        "oi.decs.temperature_control.b01_s401.temperature",
	"get_PT2_T1":       "oi.decs.temperature_control.g01_s401.temperature",
	"get_DR1_T":        "oi.decs.temperature_control.b01_s501.temperature",
	"get_PT1_T1":       "oi.decs.temperature_control.g01_s501.temperature",
	"get_3He_F":        "oi.decs.flow_control.a01_fm001.flow",
	"get_OVC_P":        "oi.decs.proteox.i_pg001.pressure",
	"get_P1_P":         "oi.decs.proteox.a01_pg001.pressure",
	"get_P2_P":         "oi.decs.proteox.a01_pg002.pressure",
	"get_P3_P":         "oi.decs.proteox.a01_pg003.pressure",
	"get_P4_P":         "oi.decs.proteox.a01_pg004.pressure",
	"get_P5_P":         "oi.decs.proteox.a01_pg005.pressure",
	"get_P6_P":         "oi.decs.proteox.a01_pg006.pressure",
	"get_MAG_T":        "oi.decs.magnetic_field_control.MAG_MSP_S.temperature",
	"get_MAG_VEC":      "oi.decs.magnetic_field_control.VRM_01.magnetic_field_vector",
	"get_MAG_STATE":    "oi.decs.magnetic_field_control.VRM_01.state",
	"get_SWZ_STATE":    "oi.decs.magnetic_field_control.VRM_01.SWZ.state",
	"set_MAG_TARGET":   "oi.decs.magnetic_field_control.VRM_01.set_field_target",
	"get_MAG_TARGET":   "oi.decs.magnetic_field_control.VRM_01.field_target",
	"set_MAG_STATE":    "oi.decs.magnetic_field_control.VRM_01.set_state",
	"set_MAG_X_STATE":  "oi.decs.magnetic_field_control.VRM_01.MAG_X.set_state",
	"set_MAG_Y_STATE":  "oi.decs.magnetic_field_control.VRM_01.MAG_Y.set_state",
	"set_MAG_Z_STATE":  "oi.decs.magnetic_field_control.VRM_01.MAG_Z.set_state",
	"get_MAG_X_STATE":  "oi.decs.magnetic_field_control.VRM_01.MAG_X.state",
	"get_MAG_Y_STATE":  "oi.decs.magnetic_field_control.VRM_01.MAG_Y.state",
	"get_MAG_Z_STATE":  "oi.decs.magnetic_field_control.VRM_01.MAG_Z.state",
	"get_MAG_CURR_VEC": "oi.decs.magnetic_field_control.VRM_01.current_vector",
	"set_CURR_TARGET":  "oi.decs.magnetic_field_control.VRM_01.set_output_current_target",
	"get_CURR_TARGET":  "oi.decs.magnetic_field_control.VRM_01.output_current_target",
	"PUBLISH":          "oi.decs.proteox.eventlog",
	"get_a_WAMP_error": "oi.decs.THIS_WONT_WORK", // used for testing only
	"set_a_WAMP_error": "oi.decs.THIS_WONT_WORK",
}
