// Package cc implements the Command Class codecs: stateless encode/decode
// functions that turn a logical operation (set a value, request a report)
// into the payload bytes carried inside a SendData frame, and parse report
// payloads back into values.
package cc

// Class is a one-byte Command Class namespace identifier.
type Class byte

const (
	ClassNoOperation                     Class = 0x00
	ClassNodeInfo                        Class = 0x01
	ClassRequestNodeInfo                 Class = 0x02
	ClassAssignIDs                       Class = 0x03
	ClassFindNodesInRange                Class = 0x04
	ClassGetNodesInRange                 Class = 0x05
	ClassRangeInfo                       Class = 0x06
	ClassCmdComplete                     Class = 0x07
	ClassTransferPresentation            Class = 0x08
	ClassTransferNodeInfo                Class = 0x09
	ClassTransferRangeInfo               Class = 0x0A
	ClassTransferEnd                     Class = 0x0B
	ClassAssignReturnRoute               Class = 0x0C
	ClassNewNodeRegistered               Class = 0x0D
	ClassNewRangeRegistered              Class = 0x0E
	ClassTransferNewPrimaryComplete      Class = 0x0F
	ClassAutomaticControllerUpdateStart Class = 0x10
	ClassSucNodeID                       Class = 0x11
	ClassSetSuc                          Class = 0x12
	ClassSetSucAck                       Class = 0x13
	ClassAssignSucReturnRoute            Class = 0x14
	ClassStaticRouteRequest              Class = 0x15
	ClassLost                            Class = 0x16
	ClassAcceptLost                      Class = 0x17
	ClassNopPower                        Class = 0x18
	ClassReserveNodeIDs                  Class = 0x19
	ClassReservedIDs                     Class = 0x1A
	ClassBasic                           Class = 0x20
	ClassControllerReplication           Class = 0x21
	ClassApplicationStatus               Class = 0x22
	ClassZipServices                     Class = 0x23
	ClassZipServer                       Class = 0x24
	ClassSwitchBinary                    Class = 0x25
	ClassSwitchMultilevel                Class = 0x26
	ClassSwitchAll                       Class = 0x27
	ClassSwitchToggleBinary              Class = 0x28
	ClassSwitchToggleMultilevel          Class = 0x29
	ClassChimneyFan                      Class = 0x2A
	ClassSceneActivation                 Class = 0x2B
	ClassSceneActuatorConf               Class = 0x2C
	ClassSceneControllerConf             Class = 0x2D
	ClassZipClient                       Class = 0x2E
	ClassZipAdvServices                  Class = 0x2F
	ClassSensorBinary                    Class = 0x30
	ClassSensorMultilevel                Class = 0x31
	ClassMeter                           Class = 0x32
	ClassZipAdvServer                    Class = 0x33
	ClassZipAdvClient                    Class = 0x34
	ClassMeterPulse                      Class = 0x35
	ClassThermostatHeating               Class = 0x38
	ClassMeterTblConfig                  Class = 0x3C
	ClassMeterTblMonitor                 Class = 0x3D
	ClassMeterTblPush                    Class = 0x3E
	ClassThermostatMode                  Class = 0x40
	ClassThermostatOperatingState        Class = 0x42
	ClassThermostatSetpoint              Class = 0x43
	ClassThermostatFanMode               Class = 0x44
	ClassThermostatFanState              Class = 0x45
	ClassClimateControlSchedule          Class = 0x46
	ClassThermostatSetback               Class = 0x47
	ClassTarifConfig                     Class = 0x4A
	ClassTarifTableMonitor               Class = 0x4B
	ClassDoorLockLogging                 Class = 0x4C
	ClassScheduleEntryLock               Class = 0x4E
	ClassZip6LowPan                      Class = 0x4F
	ClassBasicWindowCovering             Class = 0x50
	ClassMtpWindowCovering                Class = 0x51
	ClassMultiInstance                   Class = 0x60
	ClassDoorLock                        Class = 0x62
	ClassUserCode                        Class = 0x63
	ClassConfiguration                   Class = 0x70
	ClassAlarm                           Class = 0x71
	ClassManufacturerSpecific            Class = 0x72
	ClassPowerLevel                      Class = 0x73
	ClassProtection                      Class = 0x75
	ClassLock                            Class = 0x76
	ClassNodeNaming                      Class = 0x77
	ClassFirmwareUpdateMD                Class = 0x7A
	ClassGroupingName                    Class = 0x7B
	ClassRemoteAssociationActivate       Class = 0x7C
	ClassRemoteAssociation               Class = 0x7D
	ClassBattery                         Class = 0x80
	ClassClock                           Class = 0x81
	ClassHail                            Class = 0x82
	ClassWakeUp                          Class = 0x84
	ClassAssociation                     Class = 0x85
	ClassVersion                         Class = 0x86
	ClassIndicator                       Class = 0x87
	ClassProprietary                     Class = 0x88
	ClassLanguage                        Class = 0x89
	ClassTime                            Class = 0x8A
	ClassTimeParameters                  Class = 0x8B
	ClassGeographicLocation              Class = 0x8C
	ClassComposite                       Class = 0x8D
	ClassMultiInstanceAssociation        Class = 0x8E
	ClassMultiCmd                        Class = 0x8F
	ClassEnergyProduction                Class = 0x90
	ClassManufacturerProprietary         Class = 0x91
	ClassScreenMD                        Class = 0x92
	ClassScreenAttributes                Class = 0x93
	ClassSimpleAvControl                 Class = 0x94
	ClassAvContentDirectoryMD            Class = 0x95
	ClassAvRendererStatus                Class = 0x96
	ClassAvContentSearchMD               Class = 0x97
	ClassSecurity                        Class = 0x98
	ClassAvTaggingMD                     Class = 0x99
	ClassIPConfiguration                 Class = 0x9A
	ClassAssociationCommandConfiguration Class = 0x9B
	ClassSensorAlarm                     Class = 0x9C
	ClassSilenceAlarm                    Class = 0x9D
	ClassSensorConfiguration             Class = 0x9E
	ClassMark                            Class = 0xEF
	ClassNonInteroperable                Class = 0xF0
)

var classNames = map[Class]string{
	ClassNoOperation: "NoOperation", ClassNodeInfo: "NodeInfo", ClassRequestNodeInfo: "RequestNodeInfo",
	ClassAssignIDs: "AssignIds", ClassFindNodesInRange: "FindNodesInRange", ClassGetNodesInRange: "GetNodesInRange",
	ClassRangeInfo: "RangeInfo", ClassCmdComplete: "CmdComplete", ClassTransferPresentation: "TransferPresentation",
	ClassTransferNodeInfo: "TransferNodeInfo", ClassTransferRangeInfo: "TransferRangeInfo", ClassTransferEnd: "TransferEnd",
	ClassAssignReturnRoute: "AssignReturnRoute", ClassNewNodeRegistered: "NewNodeRegistered",
	ClassNewRangeRegistered: "NewRangeRegistered", ClassTransferNewPrimaryComplete: "TransferNewPrimaryComplete",
	ClassAutomaticControllerUpdateStart: "AutomaticControllerUpdateStart", ClassSucNodeID: "SucNodeId",
	ClassSetSuc: "SetSuc", ClassSetSucAck: "SetSucAck", ClassAssignSucReturnRoute: "AssignSucReturnRoute",
	ClassStaticRouteRequest: "StaticRouteRequest", ClassLost: "Lost", ClassAcceptLost: "AcceptLost",
	ClassNopPower: "NopPower", ClassReserveNodeIDs: "ReserveNodeIds", ClassReservedIDs: "ReservedIds",
	ClassBasic: "Basic", ClassControllerReplication: "ControllerReplication", ClassApplicationStatus: "ApplicationStatus",
	ClassZipServices: "ZipServices", ClassZipServer: "ZipServer", ClassSwitchBinary: "SwitchBinary",
	ClassSwitchMultilevel: "SwitchMultilevel", ClassSwitchAll: "SwitchAll", ClassSwitchToggleBinary: "SwitchToggleBinary",
	ClassSwitchToggleMultilevel: "SwitchToggleMultilevel", ClassChimneyFan: "ChimneyFan",
	ClassSceneActivation: "SceneActivation", ClassSceneActuatorConf: "SceneActuatorConf",
	ClassSceneControllerConf: "SceneControllerConf", ClassZipClient: "ZipClient", ClassZipAdvServices: "ZipAdvServices",
	ClassSensorBinary: "SensorBinary", ClassSensorMultilevel: "SensorMultilevel", ClassMeter: "Meter",
	ClassZipAdvServer: "ZipAdvServer", ClassZipAdvClient: "ZipAdvClient", ClassMeterPulse: "MeterPulse",
	ClassThermostatHeating: "ThermostatHeating", ClassMeterTblConfig: "MeterTblConfig",
	ClassMeterTblMonitor: "MeterTblMonitor", ClassMeterTblPush: "MeterTblPush", ClassThermostatMode: "ThermostatMode",
	ClassThermostatOperatingState: "ThermostatOperatingState", ClassThermostatSetpoint: "ThermostatSetpoint",
	ClassThermostatFanMode: "ThermostatFanMode", ClassThermostatFanState: "ThermostatFanState",
	ClassClimateControlSchedule: "ClimateControlSchedule", ClassThermostatSetback: "ThermostatSetback",
	ClassTarifConfig: "TarifConfig", ClassTarifTableMonitor: "TarifTableMonitor",
	ClassDoorLockLogging: "DoorLockLogging", ClassScheduleEntryLock: "ScheduleEntryLock", ClassZip6LowPan: "Zip6LowPan",
	ClassBasicWindowCovering: "BasicWindowCovering", ClassMtpWindowCovering: "MtpWindowCovering",
	ClassMultiInstance: "MultiInstance", ClassDoorLock: "DoorLock", ClassUserCode: "UserCode",
	ClassConfiguration: "Configuration", ClassAlarm: "Alarm", ClassManufacturerSpecific: "ManufacturerSpecific",
	ClassPowerLevel: "PowerLevel", ClassProtection: "Protection", ClassLock: "Lock", ClassNodeNaming: "NodeNaming",
	ClassFirmwareUpdateMD: "FirmwareUpdateMd", ClassGroupingName: "GroupingName",
	ClassRemoteAssociationActivate: "RemoteAssociationActivate", ClassRemoteAssociation: "RemoteAssociation",
	ClassBattery: "Battery", ClassClock: "Clock", ClassHail: "Hail", ClassWakeUp: "WakeUp",
	ClassAssociation: "Association", ClassVersion: "Version", ClassIndicator: "Indicator",
	ClassProprietary: "Proprietary", ClassLanguage: "Language", ClassTime: "Time",
	ClassTimeParameters: "TimeParameters", ClassGeographicLocation: "GeographicLocation",
	ClassComposite: "Composite", ClassMultiInstanceAssociation: "MultiInstanceAssociation",
	ClassMultiCmd: "MultiCmd", ClassEnergyProduction: "EnergyProduction",
	ClassManufacturerProprietary: "ManufacturerProprietary", ClassScreenMD: "ScreenMd",
	ClassScreenAttributes: "ScreenAttributes", ClassSimpleAvControl: "SimpleAvControl",
	ClassAvContentDirectoryMD: "AvContentDirectoryMd", ClassAvRendererStatus: "AvRendererStatus",
	ClassAvContentSearchMD: "AvContentSearchMd", ClassSecurity: "Security", ClassAvTaggingMD: "AvTaggingMd",
	ClassIPConfiguration: "IpConfiguration", ClassAssociationCommandConfiguration: "AssociationCommandConfiguration",
	ClassSensorAlarm: "SensorAlarm", ClassSilenceAlarm: "SilenceAlarm", ClassSensorConfiguration: "SensorConfiguration",
	ClassMark: "Mark", ClassNonInteroperable: "NonInteroperable",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// ClassFromByte converts a wire byte to a Class, reporting false for any
// value outside the enumerated table.
func ClassFromByte(b byte) (Class, bool) {
	_, ok := classNames[Class(b)]
	return Class(b), ok
}

// AsByte returns the wire encoding of c.
func (c Class) AsByte() byte { return byte(c) }
